// Package heightfield implements a 1-D sampled elevation curve with linear
// interpolation between samples. It is the terrain substrate shared by the
// water surface and riverbed models.
package heightfield

import "math"

// Field stores N+1 uniformly spaced height samples over [0, width].
// Sample values are always clamped to [floor, ceiling].
type Field struct {
	width   float64
	floor   float64
	ceiling float64
	samples []float64
	dirty   bool
}

// New constructs a field with n segments (n+1 samples) spanning the given
// width, with all samples clamped to [floor, ceiling].
func New(n int, width, floor, ceiling float64) *Field {
	if n < 1 {
		n = 1
	}
	if width <= 0 {
		width = 1
	}
	if ceiling < floor {
		ceiling = floor
	}
	return &Field{
		width:   width,
		floor:   floor,
		ceiling: ceiling,
		samples: make([]float64, n+1),
	}
}

// Width reports the horizontal extent of the field.
func (f *Field) Width() float64 { return f.width }

// Samples exposes the raw sample buffer. Callers treat it as a read-only
// snapshot; mutation goes through Set, Fill and Raise so clamping holds.
func (f *Field) Samples() []float64 { return f.samples }

// SampleX returns the x coordinate of sample i.
func (f *Field) SampleX(i int) float64 {
	return f.width * float64(i) / float64(len(f.samples)-1)
}

// Resize changes the horizontal extent without resampling. Heights stay
// attached to their parametric positions.
func (f *Field) Resize(width float64) {
	if width <= 0 {
		return
	}
	f.width = width
	f.dirty = true
}

// HeightAt returns the interpolated height at x. x is clamped to [0, width],
// so queries beyond either edge return the edge sample.
func (f *Field) HeightAt(x float64) float64 {
	if x < 0 {
		x = 0
	}
	if x > f.width {
		x = f.width
	}
	n := len(f.samples) - 1
	pos := x / f.width * float64(n)
	i := int(pos)
	if i >= n {
		return f.samples[n]
	}
	frac := pos - float64(i)
	return f.samples[i] + (f.samples[i+1]-f.samples[i])*frac
}

// Set stores a height at sample i, clamped to the field bounds.
func (f *Field) Set(i int, h float64) {
	if i < 0 || i >= len(f.samples) {
		return
	}
	f.samples[i] = f.clamp(h)
	f.dirty = true
}

// Fill assigns the same clamped height to every sample.
func (f *Field) Fill(h float64) {
	h = f.clamp(h)
	for i := range f.samples {
		f.samples[i] = h
	}
	f.dirty = true
}

// Raise adds a smooth mound centered at x. The kernel is cos²(π/2·d/radius),
// so the contribution falls to zero exactly at the radius edge and no sample
// farther than radius from x changes. Results are clamped to the field
// bounds.
func (f *Field) Raise(x, amount, radius float64) {
	if radius <= 0 || amount == 0 {
		return
	}
	n := len(f.samples) - 1
	step := f.width / float64(n)
	lo := int(math.Ceil((x - radius) / step))
	hi := int(math.Floor((x + radius) / step))
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	for i := lo; i <= hi; i++ {
		dist := math.Abs(f.width*float64(i)/float64(n) - x)
		if dist > radius {
			continue
		}
		w := math.Cos(math.Pi / 2 * dist / radius)
		f.samples[i] = f.clamp(f.samples[i] + amount*w*w)
	}
	f.dirty = true
}

// CoverageAbove reports the fraction of samples at or above the threshold.
func (f *Field) CoverageAbove(threshold float64) float64 {
	if len(f.samples) == 0 {
		return 0
	}
	count := 0
	for _, h := range f.samples {
		if h >= threshold {
			count++
		}
	}
	return float64(count) / float64(len(f.samples))
}

// Dirty reports whether the samples changed since the last ClearDirty. The
// renderer uses it to skip mesh rebuilds.
func (f *Field) Dirty() bool { return f.dirty }

// ClearDirty marks the current samples as consumed.
func (f *Field) ClearDirty() { f.dirty = false }

func (f *Field) clamp(h float64) float64 {
	if h < f.floor {
		return f.floor
	}
	if h > f.ceiling {
		return f.ceiling
	}
	return h
}

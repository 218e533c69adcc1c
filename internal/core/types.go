package core

// Frame describes the normalized world rectangle a scene simulates in.
// Width derives from the viewport aspect ratio; all spatial quantities are
// expressed in this coordinate space, not pixels.
type Frame struct {
	Width  float64
	Height float64
	Top    float64
	Bottom float64
}

// Resize recomputes the frame width from a viewport aspect ratio while
// keeping the vertical extent fixed.
func (f *Frame) Resize(aspect float64) {
	if aspect <= 0 {
		return
	}
	f.Width = f.Height * aspect
}

// Scene defines the minimal contract an interactive simulation scene must
// implement.
type Scene interface {
	Name() string
	Frame() Frame
	Reset(seed int64)
	Update(dt float64)
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}

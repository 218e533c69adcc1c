package core

import (
	"testing"
	"time"
)

type stubScene struct{ name string }

func (s *stubScene) Name() string      { return s.name }
func (s *stubScene) Frame() Frame      { return Frame{} }
func (s *stubScene) Reset(int64)       {}
func (s *stubScene) Update(dt float64) {}

func TestRegisterAndLookup(t *testing.T) {
	Register("stub", func(cfg map[string]string) Scene {
		return &stubScene{name: "stub"}
	})
	factory, ok := Scenes()["stub"]
	if !ok {
		t.Fatal("registered factory not found")
	}
	if got := factory(nil).Name(); got != "stub" {
		t.Fatalf("factory built scene %q", got)
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Scenes())
	Register("", func(cfg map[string]string) Scene { return &stubScene{} })
	Register("nilfactory", nil)
	if len(Scenes()) != before {
		t.Fatal("invalid registrations mutated the registry")
	}
}

func TestFixedStepSkipAbsorbsPause(t *testing.T) {
	fs := NewFixedStep(60)
	for fs.ShouldStep() {
	}

	// A paused stretch several steps long, absorbed frame by frame.
	time.Sleep(120 * time.Millisecond)
	fs.Skip()

	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps > 1 {
		t.Fatalf("resume drained %d steps in one frame, want at most 1", steps)
	}
}

func TestFixedStepDT(t *testing.T) {
	fs := NewFixedStep(50)
	if got := fs.DT(); got != 0.02 {
		t.Fatalf("DT at 50 TPS = %f, want 0.02", got)
	}
	fs.SetTPS(0)
	if got := fs.DT(); got != 1.0/60.0 {
		t.Fatalf("DT after invalid TPS = %f, want the 60 TPS fallback", got)
	}
}

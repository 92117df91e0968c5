package sketchbook

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Run creates a canvas sized for s, calls Setup once and then Draw frames
// times. The canvas is returned even when a hook fails, holding whatever
// was drawn up to that point.
func Run(s *Sketch, frames int, opts ...CanvasOption) (*Canvas, error) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = DefaultCanvasSize
	}
	if h <= 0 {
		h = DefaultCanvasSize
	}
	c := NewCanvas(w, h, opts...)
	return c, RunOn(c, s, frames)
}

// RunOn drives s against an existing context.
func RunOn(dc DrawingContext, s *Sketch, frames int) error {
	if s.Hooks.Setup != nil {
		if err := s.Hooks.Setup(dc); err != nil {
			return fmt.Errorf("sketchbook: %s setup: %w", s.Name, err)
		}
	}
	if s.Hooks.Draw == nil {
		return nil
	}
	if s.NoLoop && frames > 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		dc.ResetMatrix()
		if err := s.Hooks.Draw(dc); err != nil {
			return fmt.Errorf("sketchbook: %s frame %d: %w", s.Name, i, err)
		}
	}
	Logger().Debug("sketch ran", "sketch", s.Name, "frames", frames)
	return nil
}

// DisplayTitle returns s.Title, or a title-cased form of s.Name.
func (s *Sketch) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	name := strings.NewReplacer("-", " ", "_", " ").Replace(s.Name)
	return cases.Title(language.English).String(name)
}

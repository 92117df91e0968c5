package recording

import (
	"errors"
	"fmt"

	"github.com/penplot/sketchbook"
	"github.com/penplot/sketchbook/svgdoc"
)

var (
	_ sketchbook.DrawingContext = (*Recorder)(nil)
	_ sketchbook.VectorTarget   = (*Recorder)(nil)
)

// ErrNoShapes is returned by Replay when no hook produced a shape.
var ErrNoShapes = errors.New("recording: replay produced no shapes")

// HookError reports a sketch hook that failed during replay, either by
// returning an error or by panicking.
type HookError struct {
	// Hook is "trace", "draw" or "setup".
	Hook string
	// Err is the returned error, or a description of the panic.
	Err error
	// Panic holds the recovered value when the hook panicked.
	Panic any
}

func (e *HookError) Error() string {
	return fmt.Sprintf("recording: %s hook: %v", e.Hook, e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }

// ReplayOptions configures Replay.
type ReplayOptions struct {
	// Width and Height size the target document.
	Width, Height int
	// Background fills the target's background rect.
	Background string
	// DefaultStroke is the stroke color before the sketch sets one.
	DefaultStroke string
	// ColorMode is the color mode the recording starts in, normally the
	// live canvas's current mode.
	ColorMode sketchbook.ColorMode
}

// Replay runs a sketch against a Recorder and returns the vector document
// it drew.
//
// Hooks are tried in the order Trace, Draw, Setup, skipping unset ones, and
// the first hook after which a document holds shapes ends the replay. A
// document the sketch started itself through sketchbook.VectorTarget wins
// over the target document. Failing hooks are logged and the next one is
// tried.
//
// Replay touches no state outside the Recorder it creates, so the caller's
// canvas is unchanged whatever the outcome. When nothing is drawn the error
// wraps ErrNoShapes and every *HookError collected on the way.
func Replay(h sketchbook.Hooks, opts ReplayOptions) (*svgdoc.Document, error) {
	target := svgdoc.New(opts.Width, opts.Height, opts.Background)
	rec := NewRecorder(target, opts.DefaultStroke)
	rec.ColorMode(opts.ColorMode)

	log := sketchbook.Logger()
	steps := []struct {
		name string
		fn   sketchbook.HookFunc
	}{
		{"trace", h.Trace},
		{"draw", h.Draw},
		{"setup", h.Setup},
	}

	var errs []error
	for _, step := range steps {
		if step.fn == nil {
			continue
		}
		if err := invoke(step.name, step.fn, rec); err != nil {
			log.Warn("recording: hook failed", "hook", step.name, "err", err)
			errs = append(errs, err)
		}
		if doc := rec.result(); doc != nil {
			log.Debug("recording: replay done",
				"hook", step.name,
				"shapes", len(doc.Shapes()),
				"ignored", rec.Ignored())
			return doc, nil
		}
	}
	return nil, errors.Join(append([]error{ErrNoShapes}, errs...)...)
}

// invoke calls fn, turning a returned error or a panic into a *HookError.
func invoke(name string, fn sketchbook.HookFunc, dc sketchbook.DrawingContext) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &HookError{Hook: name, Err: fmt.Errorf("panic: %v", p), Panic: p}
		}
	}()
	if e := fn(dc); e != nil {
		return &HookError{Hook: name, Err: e}
	}
	return nil
}

package recording

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penplot/sketchbook"
)

var testOpts = ReplayOptions{Width: 480, Height: 480, Background: "#ffffff", DefaultStroke: "#000000"}

func drawLine(dc sketchbook.DrawingContext) error {
	dc.Line(0, 0, 10, 10)
	return nil
}

func TestReplayDraw(t *testing.T) {
	doc, err := Replay(sketchbook.Hooks{Draw: drawLine}, testOpts)
	require.NoError(t, err)

	shapes := doc.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, "line", shapes[0].Name)
	w, h := doc.Size()
	assert.Equal(t, 480, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, "#ffffff", doc.Background().Get("fill"))
}

func TestReplayHookOrder(t *testing.T) {
	var calls []string
	hook := func(name string, draws bool) sketchbook.HookFunc {
		return func(dc sketchbook.DrawingContext) error {
			calls = append(calls, name)
			if draws {
				dc.Line(0, 0, 1, 1)
			}
			return nil
		}
	}

	_, err := Replay(sketchbook.Hooks{
		Trace: hook("trace", false),
		Draw:  hook("draw", true),
		Setup: hook("setup", true),
	}, testOpts)
	require.NoError(t, err)
	assert.Equal(t, []string{"trace", "draw"}, calls, "setup is not needed once draw produced shapes")
}

func TestReplayTraceWins(t *testing.T) {
	drawCalled := false
	doc, err := Replay(sketchbook.Hooks{
		Trace: drawLine,
		Draw: func(sketchbook.DrawingContext) error {
			drawCalled = true
			return nil
		},
	}, testOpts)
	require.NoError(t, err)
	assert.Len(t, doc.Shapes(), 1)
	assert.False(t, drawCalled)
}

func TestReplayPanicFallsThrough(t *testing.T) {
	doc, err := Replay(sketchbook.Hooks{
		Draw:  func(sketchbook.DrawingContext) error { panic("boom") },
		Setup: drawLine,
	}, testOpts)
	require.NoError(t, err)
	assert.Len(t, doc.Shapes(), 1)
}

func TestReplayNoShapes(t *testing.T) {
	hookErr := errors.New("bad frame")
	_, err := Replay(sketchbook.Hooks{
		Trace: func(sketchbook.DrawingContext) error { panic("boom") },
		Draw:  func(sketchbook.DrawingContext) error { return hookErr },
		Setup: func(dc sketchbook.DrawingContext) error {
			dc.Background(sketchbook.Gray(0))
			return nil
		},
	}, testOpts)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoShapes)
	assert.ErrorIs(t, err, hookErr)

	var he *HookError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "trace", he.Hook)
	assert.Equal(t, "boom", he.Panic)
	assert.Contains(t, he.Error(), "panic: boom")
}

func TestReplayEmptyHooks(t *testing.T) {
	doc, err := Replay(sketchbook.Hooks{}, testOpts)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrNoShapes)
}

func TestReplayColorModeSeed(t *testing.T) {
	hooks := sketchbook.Hooks{Draw: func(dc sketchbook.DrawingContext) error {
		dc.Stroke(sketchbook.Triple{120, 100, 100})
		dc.Line(0, 0, 1, 1)
		return nil
	}}

	doc, err := Replay(hooks, testOpts)
	require.NoError(t, err)
	assert.Equal(t, "rgb(120,100,100)", doc.Shapes()[0].Get("stroke"))

	opts := testOpts
	opts.ColorMode = sketchbook.HSBMode
	doc, err = Replay(hooks, opts)
	require.NoError(t, err)
	assert.Equal(t, "rgb(0,255,0)", doc.Shapes()[0].Get("stroke"))
}

func TestReplaySketchDocumentWins(t *testing.T) {
	doc, err := Replay(sketchbook.Hooks{Draw: func(dc sketchbook.DrawingContext) error {
		dc.Line(0, 0, 1, 1)
		if vt, ok := dc.(sketchbook.VectorTarget); ok {
			vt.NewDocument(300, 200)
		}
		dc.Line(5, 5, 6, 6)
		dc.Line(7, 7, 8, 8)
		return nil
	}}, testOpts)
	require.NoError(t, err)

	w, h := doc.Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
	assert.Len(t, doc.Shapes(), 2)
}

func TestReplayLeavesCanvasUntouched(t *testing.T) {
	s := &sketchbook.Sketch{
		Name:   "resizer",
		Width:  64,
		Height: 32,
		Hooks: sketchbook.Hooks{Draw: func(dc sketchbook.DrawingContext) error {
			dc.NoCanvas()
			dc.CreateCanvas(10, 10)
			dc.Stroke(sketchbook.RGB{R: 255})
			dc.Line(0, 0, 5, 5)
			return nil
		}},
	}
	canvas := sketchbook.NewCanvas(64, 32)
	canvas.Stroke(sketchbook.RGB{B: 255})
	before := canvas.StrokeStyle()

	_, err := Replay(s.Hooks, ReplayOptions{
		Width:         canvas.Width(),
		Height:        canvas.Height(),
		DefaultStroke: canvas.StrokeStyle(),
		ColorMode:     canvas.CurrentColorMode(),
	})
	require.NoError(t, err)

	assert.True(t, canvas.HasContext())
	assert.Equal(t, 64, canvas.Width())
	assert.Equal(t, 32, canvas.Height())
	assert.Equal(t, before, canvas.StrokeStyle())
}

func TestHookErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &HookError{Hook: "draw", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is(HookError, inner) = false, want true")
	}
	if got, want := err.Error(), "recording: draw hook: inner"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

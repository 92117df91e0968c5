package gallery

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTilesKeepOrder(t *testing.T) {
	tiles := Tiles([]string{"shockwave", "nope", "pens"}, WithThumbSize(60), WithWorkers(2))
	require.Len(t, tiles, 3)

	assert.Equal(t, "shockwave", tiles[0].Name)
	assert.NoError(t, tiles[0].Err)
	assert.True(t, strings.HasPrefix(tiles[0].DataURL, "data:image/png;base64,"))
	assert.Equal(t, 60, tiles[0].Height, "square canvas gives a square tile")

	assert.Error(t, tiles[1].Err)
	assert.Empty(t, tiles[1].DataURL)

	assert.Equal(t, "Pens", tiles[2].Title)
	assert.Equal(t, 90, tiles[2].Height, "480x720 canvas keeps its aspect")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []string{"pens", "shockwave", "nope"}, WithColumns(2), WithThumbSize(50))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<title>Sketchbook</title>")
	assert.Equal(t, 2, strings.Count(out, "<image "))
	assert.Contains(t, out, `id="sketch-pens"`)
	assert.Contains(t, out, `id="sketch-nope"`)
	assert.Contains(t, out, "unavailable")
	assert.Contains(t, out, "Shockwave (shockwave)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	err := Render(failingWriter{}, []string{"shockwave"}, WithThumbSize(20))
	assert.EqualError(t, err, "disk full")
}

func TestOptionsIgnoreNonPositive(t *testing.T) {
	o := buildOptions([]Option{WithColumns(0), WithThumbSize(-1), WithFrames(0)})
	assert.Equal(t, defaultColumns, o.columns)
	assert.Equal(t, defaultThumb, o.thumb)
	assert.Equal(t, 1, o.frames)
}

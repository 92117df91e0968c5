package export

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penplot/sketchbook"
)

func TestDirDeliverer(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	d := DirDeliverer{Dir: dir}

	require.NoError(t, d.Deliver("../escape/sketch.svg", []byte("<svg/>"), MIMESVG))

	data, err := os.ReadFile(filepath.Join(dir, "sketch.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestMemoryDeliverer(t *testing.T) {
	var m MemoryDeliverer
	content := []byte("first")
	require.NoError(t, m.Deliver("a.txt", content, "text/plain"))
	require.NoError(t, m.Deliver("a.txt", []byte("second"), "text/plain"))
	content[0] = 'X'

	files := m.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "first", string(files[0].Content), "content is copied")

	f, ok := m.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, "second", string(f.Content))

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestHTTPDeliverer(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, HTTPDeliverer{W: rec}.Deliver("sketch.dxf", []byte("0\nEOF\n"), MIMEDXF))

	res := rec.Result()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, MIMEDXF, res.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=sketch.dxf", res.Header.Get("Content-Disposition"))
	assert.Equal(t, "6", res.Header.Get("Content-Length"))
	assert.Equal(t, "0\nEOF\n", rec.Body.String())
}

func TestObjectURLs(t *testing.T) {
	var opened []string
	urls := &ObjectURLs{
		Prefix:      "/blob/",
		RevokeAfter: 20 * time.Millisecond,
		Open:        func(url, name string) { opened = append(opened, url+" "+name) },
	}

	require.NoError(t, urls.Deliver("sketch.svg", []byte("<svg/>"), MIMESVG))
	require.Len(t, opened, 1)
	url, name, _ := strings.Cut(opened[0], " ")
	assert.Equal(t, "sketch.svg", name)
	assert.True(t, strings.HasPrefix(url, "/blob/blob:"))

	f, ok := urls.Lookup(url)
	require.True(t, ok)
	assert.Equal(t, "<svg/>", string(f.Content))

	rec := httptest.NewRecorder()
	urls.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<svg/>", rec.Body.String())

	assert.Eventually(t, func() bool { return urls.Len() == 0 }, time.Second, 5*time.Millisecond)

	rec = httptest.NewRecorder()
	urls.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestObjectURLsPublish(t *testing.T) {
	urls := &ObjectURLs{Prefix: "/dl/", RevokeAfter: 20 * time.Millisecond}

	url := urls.Publish(File{Name: "sketch.pdf", MIME: MIMEPDF, Content: []byte("%PDF")})
	assert.True(t, strings.HasPrefix(url, "/dl/blob:"))

	f, ok := urls.Lookup(url)
	require.True(t, ok)
	assert.Equal(t, "sketch.pdf", f.Name)

	assert.Eventually(t, func() bool {
		_, ok := urls.Lookup(url)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestObjectURLsUnique(t *testing.T) {
	var urls ObjectURLs
	a := urls.Create(File{Name: "a"})
	b := urls.Create(File{Name: "a"})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, urls.Len())

	urls.Revoke(a)
	urls.Revoke("blob:unknown")
	assert.Equal(t, 1, urls.Len())
}

func TestInspect(t *testing.T) {
	t.Run("nil canvas", func(t *testing.T) {
		assert.Equal(t, CanvasColors{}, Inspect(nil))
	})

	t.Run("detached canvas", func(t *testing.T) {
		c := sketchbook.NewCanvas(10, 10)
		c.NoCanvas()
		assert.Equal(t, CanvasColors{}, Inspect(c))
	})

	t.Run("readable canvas", func(t *testing.T) {
		c := sketchbook.NewCanvas(10, 10)
		c.Background(sketchbook.RGB{R: 10, G: 20, B: 30})
		c.Stroke(sketchbook.CSS("#ff0000"))
		got := Inspect(c)
		assert.Equal(t, "rgb(10,20,30)", got.Background)
		assert.Equal(t, "#ff0000", got.StrokeStyle)
		assert.Equal(t, "#ffffff", got.FillStyle)
	})

	t.Run("tainted canvas uses css background", func(t *testing.T) {
		c := sketchbook.NewCanvas(10, 10, sketchbook.WithTainted(), sketchbook.WithCSSBackground("rgb(1, 2, 3)"))
		c.Background(sketchbook.Gray(0))
		got := Inspect(c)
		assert.Equal(t, "rgb(1, 2, 3)", got.Background)
		assert.Equal(t, "#000000", got.StrokeStyle)
	})
}

func TestPageSize(t *testing.T) {
	tests := []struct {
		name   string
		sketch *sketchbook.Sketch
		canvas *sketchbook.Canvas
		w, h   int
	}{
		{"canvas size wins", &sketchbook.Sketch{NP: 480}, sketchbook.NewCanvas(480, 720), 480, 720},
		{"np without canvas", &sketchbook.Sketch{NP: 600}, nil, 600, 600},
		{"default", nil, nil, DefaultReference, DefaultReference},
		{"zero-size canvas", &sketchbook.Sketch{NP: 300}, sketchbook.NewCanvas(0, 0), 300, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := NewPage(tt.sketch, tt.canvas).Size()
			if w != tt.w || h != tt.h {
				t.Errorf("Size() = %d, %d, want %d, %d", w, h, tt.w, tt.h)
			}
		})
	}
}

// Package server serves the sketch catalogue over HTTP with one download
// button per export format.
package server

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/penplot/sketchbook"
	"github.com/penplot/sketchbook/export"
	"github.com/penplot/sketchbook/internal/gallery"
	"github.com/penplot/sketchbook/sketches"
)

// BlobPrefix is the path under which object URLs are served.
const BlobPrefix = "/blob/"

// Server routes:
//
//	GET  /                                  index page
//	GET  /gallery.svg                       contact sheet
//	GET  /sketches/{name}/export/{format}   download as an attachment
//	POST /sketches/{name}/export/{format}   store under an object URL and redirect
//	GET  /blob/...                          object URL downloads
type Server struct {
	mux    *http.ServeMux
	blobs  *export.ObjectURLs
	frames int
	opts   []export.Option
}

// Option configures a Server.
type Option func(*Server)

// WithFrames sets the number of frames run before an export.
func WithFrames(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.frames = n
		}
	}
}

// WithExportOptions passes options to every Exporter.
func WithExportOptions(opts ...export.Option) Option {
	return func(s *Server) { s.opts = append(s.opts, opts...) }
}

// WithRevokeDelay sets how long object URLs stay valid.
func WithRevokeDelay(d time.Duration) Option {
	return func(s *Server) { s.blobs.RevokeAfter = d }
}

// New returns a Server with its routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		blobs:  &export.ObjectURLs{Prefix: BlobPrefix, RevokeAfter: 30 * time.Second},
		frames: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /gallery.svg", s.handleGallery)
	s.mux.HandleFunc("GET /sketches/{name}/export/{format}", s.handleDownload)
	s.mux.HandleFunc("POST /sketches/{name}/export/{format}", s.handleObjectURL)
	s.mux.Handle("GET "+BlobPrefix, s.blobs)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ObjectURLs returns the server's object URL store.
func (s *Server) ObjectURLs() *export.ObjectURLs { return s.blobs }

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Sketchbook</title></head>
<body>
<h1>Sketchbook</h1>
<p><a href="/gallery.svg">Gallery</a></p>
<ul>
{{- range .Sketches}}
<li>{{.Title}}
{{- $name := .Name}}
{{- range $.Formats}}
<form method="post" action="/sketches/{{$name}}/export/{{.}}" style="display:inline"><button>{{.}}</button></form>
{{- end}}
</li>
{{- end}}
</ul>
</body></html>
`))

type indexEntry struct {
	Name  string
	Title string
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	var data struct {
		Sketches []indexEntry
		Formats  []string
	}
	for _, name := range sketches.Names() {
		sk := sketches.Must(name)
		data.Sketches = append(data.Sketches, indexEntry{Name: name, Title: sk.DisplayTitle()})
	}
	data.Formats = export.Formats()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		sketchbook.Logger().Error("server: index", "err", err)
	}
}

func (s *Server) handleGallery(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", export.MIMESVG)
	if err := gallery.Render(w, sketches.Names(), gallery.WithFrames(s.frames)); err != nil {
		sketchbook.Logger().Error("server: gallery", "err", err)
	}
}

// recorder notes whether a Deliverer was called.
type recorder struct {
	export.Deliverer
	called bool
}

func (r *recorder) Deliver(name string, content []byte, mimeType string) error {
	r.called = true
	return r.Deliverer.Deliver(name, content, mimeType)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	rec := &recorder{Deliverer: export.HTTPDeliverer{W: w}}
	if !s.export(w, r, rec) {
		return
	}
	if !rec.called {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleObjectURL(w http.ResponseWriter, r *http.Request) {
	var url string
	out := export.DeliverFunc(func(name string, content []byte, mimeType string) error {
		url = s.blobs.Publish(export.File{Name: name, MIME: mimeType, Content: append([]byte(nil), content...)})
		return nil
	})
	if !s.export(w, r, out) {
		return
	}
	if url == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// export runs the requested sketch and saves it through out. It reports
// whether the request may still be answered by the caller.
func (s *Server) export(w http.ResponseWriter, r *http.Request, out export.Deliverer) bool {
	name, format := r.PathValue("name"), r.PathValue("format")
	log := sketchbook.Logger().With("sketch", name, "format", format)

	if !export.IsRegistered(format) {
		http.Error(w, "unknown format "+format, http.StatusNotFound)
		return false
	}
	sk, err := sketches.New(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return false
	}
	canvas, err := sketchbook.Run(sk, s.frames)
	if err != nil {
		log.Error("server: run failed", "err", err)
		http.Error(w, "sketch failed", http.StatusInternalServerError)
		return false
	}

	page := export.NewPage(sk, canvas)
	page.SaveFallback = func(string) error {
		return errors.New("canvas cannot be exported")
	}
	ex := export.New(page, out, append([]export.Option{export.WithFileName(format, name+"."+format)}, s.opts...)...)
	if err := ex.Save(format, ""); err != nil {
		log.Error("server: export failed", "err", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return false
	}
	return true
}

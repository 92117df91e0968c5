package export

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/penplot/sketchbook"
)

// MIME types of the exported files.
const (
	MIMEPNG = "image/png"
	MIMESVG = "image/svg+xml;charset=utf-8"
	MIMEDXF = "application/dxf"
	MIMEPDF = "application/pdf"
)

// Deliverer hands a named file to the user.
//
// PNG exports deliver from a background goroutine, so implementations
// must be safe for concurrent use.
type Deliverer interface {
	Deliver(name string, content []byte, mimeType string) error
}

// DeliverFunc adapts a function to the Deliverer interface.
type DeliverFunc func(name string, content []byte, mimeType string) error

// Deliver calls f.
func (f DeliverFunc) Deliver(name string, content []byte, mimeType string) error {
	return f(name, content, mimeType)
}

// DirDeliverer writes files into Dir, creating it when needed. Only the
// base name of a delivered file is used.
type DirDeliverer struct {
	Dir string
}

// Deliver writes content to Dir/name.
func (d DirDeliverer) Deliver(name string, content []byte, _ string) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(d.Dir, filepath.Base(name))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	sketchbook.Logger().Info("export: file written", "path", path, "bytes", len(content))
	return nil
}

// File is one delivered file.
type File struct {
	Name    string
	MIME    string
	Content []byte
}

// MemoryDeliverer keeps delivered files in memory.
type MemoryDeliverer struct {
	mu    sync.Mutex
	files []File
}

// Deliver records a copy of content.
func (m *MemoryDeliverer) Deliver(name string, content []byte, mimeType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = append(m.files, File{Name: name, MIME: mimeType, Content: append([]byte(nil), content...)})
	return nil
}

// Files returns the delivered files in delivery order.
func (m *MemoryDeliverer) Files() []File {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]File(nil), m.files...)
}

// Get returns the last file delivered under name.
func (m *MemoryDeliverer) Get(name string) (File, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.files) - 1; i >= 0; i-- {
		if m.files[i].Name == name {
			return m.files[i], true
		}
	}
	return File{}, false
}

// HTTPDeliverer writes a delivered file as an attachment response. It
// must deliver at most one file.
type HTTPDeliverer struct {
	W http.ResponseWriter
}

// Deliver writes the response headers and body.
func (d HTTPDeliverer) Deliver(name string, content []byte, mimeType string) error {
	writeAttachment(d.W, File{Name: name, MIME: mimeType, Content: content})
	return nil
}

func writeAttachment(w http.ResponseWriter, f File) {
	h := w.Header()
	h.Set("Content-Type", f.MIME)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	h.Set("Content-Length", strconv.Itoa(len(f.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Content)
}

// DefaultRevokeDelay is how long an object URL stays valid.
const DefaultRevokeDelay = 500 * time.Millisecond

// ObjectURLs stores delivered files under short-lived "blob:" URLs, the
// way a browser download hands a file to an anchor element.
//
// Each delivery creates a fresh URL, passes it to Open and revokes it after
// RevokeAfter. ObjectURLs serves live URLs over HTTP.
type ObjectURLs struct {
	// Prefix is prepended to generated URLs, e.g. "/blob/".
	Prefix string
	// RevokeAfter defaults to DefaultRevokeDelay.
	RevokeAfter time.Duration
	// Open is called with every new URL, like clicking a download link.
	Open func(url, name string)

	mu    sync.Mutex
	blobs map[string]File
}

// Deliver publishes content under a new URL and passes it to Open.
func (o *ObjectURLs) Deliver(name string, content []byte, mimeType string) error {
	url := o.Publish(File{Name: name, MIME: mimeType, Content: append([]byte(nil), content...)})
	if o.Open != nil {
		o.Open(url, name)
	}
	return nil
}

// Publish registers f under a new URL that is revoked after RevokeAfter.
func (o *ObjectURLs) Publish(f File) string {
	url := o.Create(f)
	delay := o.RevokeAfter
	if delay <= 0 {
		delay = DefaultRevokeDelay
	}
	time.AfterFunc(delay, func() { o.Revoke(url) })
	return url
}

// Create registers f and returns its URL. The URL stays valid until
// Revoke is called.
func (o *ObjectURLs) Create(f File) string {
	url := o.Prefix + "blob:" + uuid.NewString()
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.blobs == nil {
		o.blobs = make(map[string]File)
	}
	o.blobs[url] = f
	return url
}

// Lookup returns the file behind a live URL.
func (o *ObjectURLs) Lookup(url string) (File, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	f, ok := o.blobs[url]
	return f, ok
}

// Revoke invalidates url. Revoking an unknown URL is a no-op.
func (o *ObjectURLs) Revoke(url string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.blobs, url)
}

// Len returns the number of live URLs.
func (o *ObjectURLs) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.blobs)
}

// ServeHTTP serves the file behind the request path as an attachment.
func (o *ObjectURLs) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, o.Prefix) {
		http.NotFound(w, r)
		return
	}
	f, ok := o.Lookup(r.URL.Path)
	if !ok {
		http.Error(w, "object URL revoked", http.StatusGone)
		return
	}
	writeAttachment(w, f)
}

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFormats(t *testing.T) {
	for _, name := range []string{"dxf", "pdf", "png", "svg"} {
		if !IsRegistered(name) {
			t.Errorf("IsRegistered(%q) = false, want true", name)
		}
	}
	got := Formats()
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Errorf("Formats() not sorted: %v", got)
		}
	}
}

func TestRegisterFormat(t *testing.T) {
	var saved []string
	RegisterFormat("test-format", func(e *Exporter, name string) error {
		saved = append(saved, name)
		return nil
	})
	defer UnregisterFormat("test-format")

	assert.Contains(t, Formats(), "test-format")
	ex := New(NewPage(nil, nil), &MemoryDeliverer{})
	require.NoError(t, ex.Save("test-format", "out.bin"))
	assert.Equal(t, []string{"out.bin"}, saved)

	UnregisterFormat("test-format")
	assert.False(t, IsRegistered("test-format"))
	assert.ErrorIs(t, ex.Save("test-format", ""), ErrUnknownFormat)
}

func TestRegisterFormatPanics(t *testing.T) {
	assert.Panics(t, func() { RegisterFormat("nil-format", nil) })
	assert.Panics(t, func() {
		RegisterFormat("svg", func(*Exporter, string) error { return nil })
	}, "duplicate registration")
}

func TestUnregisterUnknownFormat(t *testing.T) {
	before := len(Formats())
	UnregisterFormat("never-registered")
	if got := len(Formats()); got != before {
		t.Errorf("len(Formats()) = %d, want %d", got, before)
	}
}

package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file. One Source can create multiple
// Face instances at different sizes. Source is heavyweight and should be
// shared across the application.
//
// Source is read-only after creation and safe for concurrent use by
// readers; measurement calls allocate their own scratch buffers.
type Source struct {
	data   []byte
	parsed *opentype.Font
	name   string
}

// NewSource creates a Source from font data (TTF or OTF). The data slice
// is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &Source{
		data:   dataCopy,
		parsed: parsed,
	}

	var buf sfnt.Buffer
	if name, err := parsed.Name(&buf, sfnt.NameIDFamily); err == nil {
		s.name = name
	}

	return s, nil
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *Source) Name() string { return s.name }

// Data returns the raw font bytes the source was created from.
// Callers must not modify the returned slice.
func (s *Source) Data() []byte { return s.data }

var defaultSource = sync.OnceValue(func() *Source {
	s, err := NewSource(goregular.TTF)
	if err != nil {
		// goregular ships with the module and always parses.
		panic(fmt.Sprintf("text: parsing embedded default font: %v", err))
	}
	return s
})

// Default returns the embedded default font source (Go Regular).
// The Source is created once and shared by all callers.
func Default() *Source { return defaultSource() }

package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Shaper converts strings into positioned glyph runs using HarfBuzz
// shaping via go-text/typesetting, with ligatures, kerning, and complex
// script support.
//
// Shaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape call (font.Face is NOT safe for concurrent use). HarfbuzzShaper
// instances are pooled since they also are not concurrent-safe.
type Shaper struct {
	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is not safe for concurrent use, but
	// reusing across sequential calls is efficient.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps Source pointers to parsed go-text Font objects.
	// font.Font is read-only and safe for concurrent use; caching it
	// avoids re-parsing font data on every Shape call.
	fontCache map[*Source]*font.Font
}

// NewShaper creates a Shaper backed by go-text/typesetting's HarfBuzz
// implementation.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*Source]*font.Font),
	}
}

// Shape shapes text with the given face and returns the resulting run.
// An empty string or nil face yields an empty run.
func (s *Shaper) Shape(str string, face *Face) *ShapedText {
	if str == "" || face == nil {
		return &ShapedText{Text: str}
	}

	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		// Unparseable font data; return an empty run rather than a
		// partial one. Sources validate on creation, so this is rare.
		return &ShapedText{Text: str}
	}

	// font.Face is not safe for concurrent use, so each Shape call gets
	// its own instance. font.NewFace is cheap: it wraps the thread-safe
	// *Font and initializes glyph caches.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(str)
	dir := baseDirection(str)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      goTextFace,
		Size:      fixed.Int26_6(face.Size() * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertRun(str, output.Glyphs)
}

// getOrCreateFont returns a cached go-text font.Font for the source, or
// parses the font data and caches the Font (not the Face).
func (s *Shaper) getOrCreateFont(source *Source) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}

	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// baseDirection returns the paragraph's base direction via the Unicode
// bidi algorithm. Mixed-direction text shapes with the paragraph's base
// direction; the console does not reorder runs.
func baseDirection(str string) di.Direction {
	p := bidi.Paragraph{}
	_, _ = p.SetString(str)
	if p.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. A simple heuristic; sufficient for console text.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertRun converts go-text output glyphs to a ShapedText run.
func convertRun(str string, glyphs []shaping.Glyph) *ShapedText {
	run := &ShapedText{Text: str}
	if len(glyphs) == 0 {
		return run
	}

	run.Glyphs = make([]Glyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		xOff := float64(g.XOffset) / 64.0
		yOff := float64(g.YOffset) / 64.0
		adv := float64(g.Advance) / 64.0

		run.Glyphs[i] = Glyph{
			GID:      uint32(g.GlyphID),
			Cluster:  g.TextIndex(),
			X:        x + xOff,
			Y:        yOff,
			XAdvance: adv,
		}
		x += adv
	}
	run.Width = x
	return run
}

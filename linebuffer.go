package devconsole

import (
	"unicode/utf8"

	"github.com/gogpu/devconsole/text"
)

// MeasureFunc returns the rendered width of a string in virtual units.
// The line buffer uses it to decide where to break streamed output.
type MeasureFunc func(s string) float64

const (
	// defaultLineLimit bounds the finalized-line history.
	defaultLineLimit = 80

	// defaultWrapWidth is the rendered-width budget for one output line,
	// in virtual units at text scale 1.
	defaultWrapWidth = 1950.0
)

// Line is one finalized snippet of console output. The text and creation
// time are immutable; the shaped representation is computed lazily on
// first draw and memoized.
type Line struct {
	Text         string
	CreationTime float64

	shaped *text.ShapedText
}

// Shaped returns the cached shaped run, shaping on first call.
func (l *Line) Shaped(shaper *text.Shaper, face *text.Face) *text.ShapedText {
	if l.shaped == nil {
		l.shaped = shaper.Shape(l.Text, face)
	}
	return l.shaped
}

// LineBuffer is the console's bounded output history: an ordered
// sequence of finalized Lines plus one mutable accumulator holding the
// in-flight tail of streamed text.
//
// LineBuffer is owned by the console's logic context and is not safe for
// concurrent use.
type LineBuffer struct {
	limit   int
	budget  float64
	measure MeasureFunc

	lines []*Line

	tail       string
	tailDirty  bool
	tailShaped *text.ShapedText
}

// NewLineBuffer creates a LineBuffer that finalizes lines once the
// accumulator's measured width exceeds budget, and evicts the oldest
// finalized line past limit.
func NewLineBuffer(limit int, budget float64, measure MeasureFunc) *LineBuffer {
	return &LineBuffer{limit: limit, budget: budget, measure: measure}
}

// Append concatenates s onto the accumulator and finalizes as many lines
// as the width budget (and any embedded newlines) require, timestamping
// them at now. No byte of appended text is ever lost or reordered, and a
// break never lands inside a multi-byte code point.
func (b *LineBuffer) Append(s string, now float64) {
	b.tail += s
	for {
		head, rest, split := splitLine(b.tail, b.budget, b.measure)
		if !split {
			break
		}
		b.push(&Line{Text: head, CreationTime: now})
		b.tail = rest
	}
	b.tailDirty = true
	b.tailShaped = nil
}

// Clear discards the finalized history and the accumulator.
func (b *LineBuffer) Clear() {
	b.lines = nil
	b.tail = ""
	b.tailDirty = true
	b.tailShaped = nil
}

// Lines returns the finalized history, oldest first. The returned slice
// is valid until the next Append or Clear.
func (b *LineBuffer) Lines() []*Line { return b.lines }

// Tail returns the in-flight accumulator text.
func (b *LineBuffer) Tail() string { return b.tail }

// TailShaped returns the shaped accumulator, re-shaping only when the
// accumulator changed since the last call.
func (b *LineBuffer) TailShaped(shaper *text.Shaper, face *text.Face) *text.ShapedText {
	if b.tailShaped == nil || b.tailDirty {
		b.tailShaped = shaper.Shape(b.tail, face)
		b.tailDirty = false
	}
	return b.tailShaped
}

func (b *LineBuffer) push(l *Line) {
	b.lines = append(b.lines, l)
	if len(b.lines) > b.limit {
		n := copy(b.lines, b.lines[len(b.lines)-b.limit:])
		clear(b.lines[n:])
		b.lines = b.lines[:n]
	}
}

// splitLine finds the first break point in s: a forced break after a
// newline, or a width overflow broken at the last space boundary when one
// exists and before the overflowing rune otherwise. It reports ok=false
// when s fits within budget with no embedded newline. head+rest == s
// always holds, and every finalized head contains at least one rune so
// repeated splitting terminates.
func splitLine(s string, budget float64, measure MeasureFunc) (head, rest string, ok bool) {
	lastBreak := 0 // byte offset just past the most recent space
	for i, r := range s {
		end := i + utf8.RuneLen(r)
		if r == '\n' {
			return s[:end], s[end:], true
		}
		if i > 0 && measure(s[:end]) > budget {
			cut := i
			if lastBreak > 0 {
				cut = lastBreak
			}
			return s[:cut], s[cut:], true
		}
		if r == ' ' {
			lastBreak = end
		}
	}
	return s, "", false
}

package devconsole

import (
	"testing"

	"github.com/gogpu/devconsole/text"
)

// fakeSurface records draw primitives for inspection.
type fakeSurface struct {
	rects   []Rect
	shadows int
	texts   []string
}

func (s *fakeSurface) FillRect(r Rect, c RGBA) {
	s.rects = append(s.rects, r)
}

func (s *fakeSurface) ShadowRect(r, clip Rect, c RGBA) {
	s.shadows++
}

func (s *fakeSurface) DrawText(run *text.ShapedText, x, y, scale float64, c RGBA, flatness float64) {
	s.texts = append(s.texts, run.Text)
}

func (s *fakeSurface) reset() {
	s.rects = nil
	s.shadows = 0
	s.texts = nil
}

func containsText(texts []string, want string) bool {
	for _, t := range texts {
		if t == want {
			return true
		}
	}
	return false
}

func TestDrawHiddenBeforeFirstTransition(t *testing.T) {
	c, _, _ := newTestConsole(t)
	s := &fakeSurface{}
	c.Draw(s)
	if len(s.rects) != 0 || len(s.texts) != 0 || s.shadows != 0 {
		t.Error("console drew before its first transition")
	}
}

func TestDrawHiddenAfterDismissCompletes(t *testing.T) {
	c, host, _ := newTestConsole(t)
	showFull(c, host)
	c.Dismiss()
	host.now += transitionSeconds

	s := &fakeSurface{}
	c.Draw(s)
	if len(s.rects) != 0 || len(s.texts) != 0 {
		t.Error("console drew after a completed dismiss")
	}

	t.Run("still draws while sliding out", func(t *testing.T) {
		c.ToggleState() // Mini
		host.now += 1
		c.Dismiss()
		host.now += transitionSeconds / 2
		s.reset()
		c.Draw(s)
		if len(s.rects) == 0 {
			t.Error("console skipped drawing mid slide-out")
		}
	})
}

func TestDrawFullLayout(t *testing.T) {
	c, host, _ := newTestConsole(t)
	showFull(c, host)

	s := &fakeSurface{}
	c.Draw(s)

	// Background, input stripe, boundary border, blinking caret
	// (real time 0 is in the on half-period), tab button backing,
	// Exec button backing.
	if got := len(s.rects); got != 6 {
		t.Errorf("fill rects = %d, want 6", got)
	}
	if s.shadows != 1 {
		t.Errorf("shadow rects = %d, want 1", s.shadows)
	}

	for _, want := range []string{host.Title(), host.BuildInfo(), ">", "Python", "Exec"} {
		if !containsText(s.texts, want) {
			t.Errorf("draw pass missing text %q (got %v)", want, s.texts)
		}
	}
}

func TestDrawCaretBlink(t *testing.T) {
	c, host, _ := newTestConsole(t)
	showFull(c, host)

	fills := func() int {
		s := &fakeSurface{}
		c.Draw(s)
		return len(s.rects)
	}

	host.realTime = 0
	on := fills()
	host.realTime = 150 // off half-period, no recent input
	off := fills()
	if on != off+1 {
		t.Errorf("caret fills: on=%d off=%d, want on = off+1", on, off)
	}

	t.Run("solid after input change", func(t *testing.T) {
		c.HandleTextInput("x")
		host.realTime = 150 // off half-period, but within grace
		if got := fills(); got != on {
			t.Errorf("fills after typing = %d, want %d (caret forced solid)", got, on)
		}
	})

	t.Run("blinks again after grace", func(t *testing.T) {
		host.realTime = 550 // off half-period, well past the grace window
		if got := fills(); got != off {
			t.Errorf("fills after grace = %d, want %d", got, off)
		}
	})
}

func TestDrawOutputOrder(t *testing.T) {
	c, host, _ := newTestConsole(t)
	c.Print("one\n")
	c.Print("two\n")
	c.Print("partial")
	showFull(c, host)

	s := &fakeSurface{}
	c.Draw(s)

	// The in-flight accumulator draws first, then finalized lines
	// newest-first.
	idx := func(want string) int {
		for i, txt := range s.texts {
			if txt == want {
				return i
			}
		}
		t.Fatalf("text %q not drawn (got %v)", want, s.texts)
		return -1
	}
	if !(idx("partial") < idx("two\n") && idx("two\n") < idx("one\n")) {
		t.Errorf("output order wrong: %v", s.texts)
	}
}

func TestDrawStopsAtTopEdge(t *testing.T) {
	c, host, _ := newTestConsole(t)
	const printed = 60
	for i := 0; i < printed; i++ {
		c.Print("line\n")
	}
	showFull(c, host)

	s := &fakeSurface{}
	c.Draw(s)

	drawn := 0
	for _, txt := range s.texts {
		if txt == "line\n" {
			drawn++
		}
	}
	if drawn >= printed {
		t.Errorf("drew all %d lines; expected clipping at the top edge", drawn)
	}
	if drawn < 2 {
		t.Errorf("drew %d lines; at least the nearest lines must be attempted", drawn)
	}
}

func TestDrawNonPromptTabSkipsPromptAndOutput(t *testing.T) {
	c, host, _ := newTestConsole(t, WithTabs("Python", "Logs"))
	c.Print("output\n")
	showFull(c, host)

	// Select the Logs tab.
	c.HandleMouseDown(MouseLeft, 470, 40)
	c.HandleMouseUp(MouseLeft, 470, 40)

	s := &fakeSurface{}
	c.Draw(s)

	if containsText(s.texts, ">") || containsText(s.texts, "output\n") {
		t.Errorf("non-prompt tab drew prompt or output: %v", s.texts)
	}
	if !containsText(s.texts, "Logs") || !containsText(s.texts, "Python") {
		t.Errorf("tab labels missing: %v", s.texts)
	}
	// Background and border only: no input stripe, no caret, no Exec
	// button. Two tab backings.
	if got := len(s.rects); got != 4 {
		t.Errorf("fill rects = %d, want 4", got)
	}
}

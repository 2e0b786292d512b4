package devconsole

import "github.com/gogpu/devconsole/text"

// Frame is the read-only per-frame context handed down to draw calls:
// current times, screen metrics, and the text stack. It is rebuilt from
// the host every frame, never cached, since screen size and UI scale can
// change live.
type Frame struct {
	// Now is the current display time in seconds.
	Now float64

	// RealTime is wall-clock milliseconds, driving the caret blink.
	RealTime int64

	// Width and Height are the current virtual screen dimensions.
	Width, Height float64

	// Scale is the console's base scale factor for the current UI tier.
	Scale float64

	// Face and Shaper render all console text.
	Face   *text.Face
	Shaper *text.Shaper
}

func (c *Console) frame() *Frame {
	w, h := c.host.ScreenSize()
	return &Frame{
		Now:      c.host.DisplayTime(),
		RealTime: c.host.RealTime(),
		Width:    w,
		Height:   h,
		Scale:    c.baseScale(),
		Face:     c.face,
		Shaper:   c.shaper,
	}
}

// Panel and text layout constants, in virtual units before scaling.
const (
	borderHeight = 3.0

	caretPeriodMillis = 200
	caretGraceMillis  = 100

	lineDrawScale = 0.6
	lineAdvance   = 18.0
)

var (
	panelColor  = RGBA{R: 0, G: 0, B: 0.1, A: 0.9}
	stripeColor = RGB(1, 1, 1).WithAlpha(0.1)
	borderColor = RGB(0.25, 0.2, 0.3)
	shadowColor = RGBA{R: 0.03, G: 0, B: 0.09, A: 0.9}
	infoColor   = RGBA{R: 0.5, G: 0.5, B: 0.7, A: 0.8}
	textColor   = RGB(1, 1, 1)
	caretColor  = RGB(1, 1, 1).WithAlpha(0.7)
)

// Draw renders the console for the current frame. It early-outs with
// zero draw cost before the first-ever transition and once a transition
// to Inactive has fully completed.
func (c *Console) Draw(s Surface) {
	f := c.frame()
	if c.vis.Hidden(f.Now) {
		return
	}

	bs := f.Scale
	bottom := c.vis.Bottom(f.Now, f.Height, bs)

	c.drawPanels(s, f, bottom, bs)

	if c.activeTab == c.promptTab() {
		c.drawPrompt(s, f, bottom, bs)
		c.drawOutput(s, f, bottom, bs)
	}

	// Tab buttons, then content buttons, always last and in that order.
	for _, wd := range c.tabWidgets {
		wd.Draw(s, f, bottom)
	}
	for _, wd := range c.widgets {
		wd.Draw(s, f, bottom)
	}
}

// drawPanels draws the background, the input stripe, the boundary
// border, and the drop shadow over the game view.
func (c *Console) drawPanels(s Surface, f *Frame, bottom, bs float64) {
	s.FillRect(Rect{X: 0, Y: bottom, W: f.Width, H: f.Height - bottom}, panelColor)
	if c.activeTab == c.promptTab() {
		s.FillRect(Rect{X: 0, Y: bottom + 15.0*bs, W: f.Width, H: 15.0 * bs}, stripeColor)
	}
	s.FillRect(Rect{X: 0, Y: bottom - borderHeight*bs, W: f.Width, H: borderHeight * bs}, borderColor)

	shadow := Rect{
		X: f.Width*0.5 - f.Width*1.2*0.5,
		Y: bottom + 160.0 - 300.0,
		W: f.Width * 1.2,
		H: 600.0,
	}
	clip := Rect{X: 0, Y: 0, W: f.Width, H: bottom - (borderHeight*0.95)*bs}
	s.ShadowRect(shadow, clip, shadowColor)
}

// drawPrompt draws the title and build stamps pinned to the panel's top
// corners, the prompt glyph, the live input text, and the caret.
func (c *Console) drawPrompt(s Surface, f *Frame, bottom, bs float64) {
	if c.inputDirty {
		c.inputShaped = f.Shaper.Shape(c.input, f.Face)
		c.inputDirty = false
		c.lastInputChange = f.RealTime
	}

	s.DrawText(c.buildShaped, f.Width-115.0*bs, bottom+4.0, 0.35*bs, infoColor, 1.0)
	s.DrawText(c.titleShaped, 10.0*bs, bottom+4.0, 0.35*bs, infoColor, 1.0)
	s.DrawText(c.promptShaped, 5.0*bs, bottom+14.5*bs, 0.5*bs, textColor, 1.0)
	s.DrawText(c.inputShaped, 15.0*bs, bottom+14.5*bs, 0.5*bs, textColor, 1.0)

	// The caret blinks on a fixed period but stays solid for a short
	// grace window after any input change.
	blinkOn := f.RealTime%caretPeriodMillis < caretPeriodMillis/2
	if blinkOn || f.RealTime-c.lastInputChange < caretGraceMillis {
		cx := (19.0 + c.inputShaped.Width*0.5) * bs
		cy := bottom + 22.5*bs
		s.FillRect(Rect{X: cx - 3.0*bs, Y: cy - 6.0*bs, W: 6.0 * bs, H: 12.0 * bs}, caretColor)
	}
}

// drawOutput draws the in-flight accumulator line, then finalized lines
// newest-first, stopping once a line would land past the top edge. The
// accumulator and the nearest finalized line are always attempted.
func (c *Console) drawOutput(s Surface, f *Frame, bottom, bs float64) {
	h := 0.5 * (f.Width - c.lines.budget*lineDrawScale)
	v := bottom + 32.0*bs

	if c.lines.Tail() != "" {
		run := c.lines.TailShaped(f.Shaper, f.Face)
		s.DrawText(run, h, v+2, lineDrawScale, textColor, 1.0)
		v += lineAdvance
	}

	lines := c.lines.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		run := lines[i].Shaped(f.Shaper, f.Face)
		s.DrawText(run, h, v+2, lineDrawScale, textColor, 1.0)
		v += lineAdvance
		if v > f.Height+lineAdvance {
			break
		}
	}
}

package devconsole

import "github.com/gogpu/devconsole/text"

// Widget is the minimal capability set for console controls. The console
// deliberately avoids the application's full UI feature set; these three
// variants (Button, ToggleButton, TabButton) are all it needs.
//
// Coordinates passed to HitTest, Press, and Release are panel-local:
// the console subtracts the current panel boundary from the event's
// screen Y before dispatching.
type Widget interface {
	// HitTest reports whether the point lies inside the widget,
	// inclusive on all four edges.
	HitTest(screenWidth, x, y float64) bool

	// Press offers a press to the widget and reports whether it was
	// consumed.
	Press(screenWidth, x, y float64) bool

	// Release delivers a release. Every widget receives every release,
	// hit or not, so press-and-drag-off still clears pressed state.
	Release(screenWidth, x, y float64)

	// Draw renders the widget with the panel boundary at bottom.
	Draw(s Surface, f *Frame, bottom float64)
}

// widgetColors is one (foreground, background) pair from a variant's
// visual state table.
type widgetColors struct {
	fg, bg RGBA
}

// colorTable maps a widget's visual state to its color pair.
// Pressed always wins, then on/selected, else the default pair.
type colorTable struct {
	pressed widgetColors
	active  widgetColors
	idle    widgetColors
}

func (t colorTable) pick(pressed, active bool) widgetColors {
	switch {
	case pressed:
		return t.pressed
	case active:
		return t.active
	default:
		return t.idle
	}
}

// Plain buttons have no on/selected state; active mirrors idle to keep
// the table total.
var buttonColors = colorTable{
	pressed: widgetColors{fg: RGB(0, 0, 0), bg: RGB(0.8, 0.7, 0.8)},
	active:  widgetColors{fg: RGB(0.8, 0.7, 0.8), bg: RGB(0.25, 0.2, 0.3)},
	idle:    widgetColors{fg: RGB(0.8, 0.7, 0.8), bg: RGB(0.25, 0.2, 0.3)},
}

// ToggleButton and TabButton share the accent table.
var accentColors = colorTable{
	pressed: widgetColors{fg: RGB(1, 1, 1), bg: RGB(0.5, 0.2, 1.0)},
	active:  widgetColors{fg: RGB(1, 1, 1), bg: RGB(0.5, 0.4, 0.6)},
	idle:    widgetColors{fg: RGB(0.8, 0.7, 0.8), bg: RGB(0.25, 0.2, 0.3)},
}

// widgetBox is the shared geometry of all widget variants: an anchor
// plus a box in anchor-local space.
type widgetBox struct {
	anchor Anchor
	x, y   float64
	w, h   float64
}

func (b widgetBox) contains(screenWidth, mx, my float64) bool {
	mx -= b.anchor.XOffset(screenWidth)
	return Rect{X: b.x, Y: b.y, W: b.w, H: b.h}.Contains(mx, my)
}

// draw renders the backing rectangle then the centered label.
func (b widgetBox) draw(s Surface, f *Frame, bottom float64, label *text.ShapedText, textScale float64, colors widgetColors) {
	x := b.x + b.anchor.XOffset(f.Width)
	s.FillRect(Rect{X: x, Y: b.y + bottom, W: b.w, H: b.h}, colors.bg)

	sc := 0.6 * textScale
	capHeight := f.Face.Metrics().CapHeight
	tx := x + b.w*0.5 - label.Width*sc*0.5
	ty := b.y + bottom + b.h*0.5 - capHeight*sc*0.5
	s.DrawText(label, tx, ty, sc, colors.fg, 1.0)
}

// Button is a momentary push button bound to a zero-argument action.
type Button struct {
	widgetBox
	label     string
	textScale float64
	onClick   func()

	pressed bool
	shaped  *text.ShapedText
}

// NewButton creates a Button. x and y are anchor-local; onClick fires on
// a release that hit-tests true while the button is pressed.
func NewButton(label string, textScale float64, anchor Anchor, x, y, w, h float64, onClick func()) *Button {
	return &Button{
		widgetBox: widgetBox{anchor: anchor, x: x, y: y, w: w, h: h},
		label:     label,
		textScale: textScale,
		onClick:   onClick,
	}
}

// HitTest implements Widget.
func (b *Button) HitTest(screenWidth, x, y float64) bool {
	return b.contains(screenWidth, x, y)
}

// Press implements Widget.
func (b *Button) Press(screenWidth, x, y float64) bool {
	if b.contains(screenWidth, x, y) {
		b.pressed = true
		return true
	}
	return false
}

// Release implements Widget.
func (b *Button) Release(screenWidth, x, y float64) {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.contains(screenWidth, x, y) && b.onClick != nil {
		b.onClick()
	}
}

// Draw implements Widget.
func (b *Button) Draw(s Surface, f *Frame, bottom float64) {
	if b.shaped == nil {
		b.shaped = f.Shaper.Shape(b.label, f.Face)
	}
	b.draw(s, f, bottom, b.shaped, b.textScale, buttonColors.pick(b.pressed, false))
}

// ToggleButton is a two-state button with separate actions for
// activation and deactivation, fired on each toggling release.
type ToggleButton struct {
	widgetBox
	label        string
	textScale    float64
	onActivate   func()
	onDeactivate func()

	pressed bool
	on      bool
	shaped  *text.ShapedText
}

// NewToggleButton creates a ToggleButton starting in the off state.
func NewToggleButton(label string, textScale float64, anchor Anchor, x, y, w, h float64, onActivate, onDeactivate func()) *ToggleButton {
	return &ToggleButton{
		widgetBox:    widgetBox{anchor: anchor, x: x, y: y, w: w, h: h},
		label:        label,
		textScale:    textScale,
		onActivate:   onActivate,
		onDeactivate: onDeactivate,
	}
}

// On reports the toggle's persistent state.
func (b *ToggleButton) On() bool { return b.on }

// HitTest implements Widget.
func (b *ToggleButton) HitTest(screenWidth, x, y float64) bool {
	return b.contains(screenWidth, x, y)
}

// Press implements Widget.
func (b *ToggleButton) Press(screenWidth, x, y float64) bool {
	if b.contains(screenWidth, x, y) {
		b.pressed = true
		return true
	}
	return false
}

// Release implements Widget.
func (b *ToggleButton) Release(screenWidth, x, y float64) {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.contains(screenWidth, x, y) {
		b.on = !b.on
		call := b.onDeactivate
		if b.on {
			call = b.onActivate
		}
		if call != nil {
			call()
		}
	}
}

// Draw implements Widget.
func (b *ToggleButton) Draw(s Surface, f *Frame, bottom float64) {
	if b.shaped == nil {
		b.shaped = f.Shaper.Shape(b.label, f.Face)
	}
	b.draw(s, f, bottom, b.shaped, b.textScale, accentColors.pick(b.pressed, b.on))
}

// TabButton is an exclusive-select button. A selected tab does not
// accept new presses, making selection idempotent.
type TabButton struct {
	widgetBox
	label     string
	textScale float64
	onSelect  func()

	pressed  bool
	selected bool
	shaped   *text.ShapedText
}

// NewTabButton creates a TabButton.
func NewTabButton(label string, selected bool, textScale float64, anchor Anchor, x, y, w, h float64, onSelect func()) *TabButton {
	return &TabButton{
		widgetBox: widgetBox{anchor: anchor, x: x, y: y, w: w, h: h},
		label:     label,
		textScale: textScale,
		onSelect:  onSelect,
		selected:  selected,
	}
}

// Selected reports whether the tab is the active one.
func (b *TabButton) Selected() bool { return b.selected }

// HitTest implements Widget.
func (b *TabButton) HitTest(screenWidth, x, y float64) bool {
	return b.contains(screenWidth, x, y)
}

// Press implements Widget.
func (b *TabButton) Press(screenWidth, x, y float64) bool {
	if b.contains(screenWidth, x, y) && !b.selected {
		b.pressed = true
		return true
	}
	return false
}

// Release implements Widget.
func (b *TabButton) Release(screenWidth, x, y float64) {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.contains(screenWidth, x, y) && b.onSelect != nil {
		b.onSelect()
	}
}

// Draw implements Widget.
func (b *TabButton) Draw(s Surface, f *Frame, bottom float64) {
	if b.shaped == nil {
		b.shaped = f.Shaper.Shape(b.label, f.Face)
	}
	b.draw(s, f, bottom, b.shaped, b.textScale, accentColors.pick(b.pressed, b.selected))
}

package devconsole

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/devconsole/text"
)

const (
	// defaultHistoryLimit bounds the command-history ring.
	defaultHistoryLimit = 100

	// defaultFontSize is the face size used for all console text, in the
	// same virtual units the draw scales multiply.
	defaultFontSize = 32.0

	// defaultTab is the interpreter tab, present unless WithTabs
	// overrides the tab set.
	defaultTab = "Python"

	// clearCommand is the one reserved prompt literal: it wipes console
	// output instead of being dispatched to the executor.
	clearCommand = "clear"
)

// Console is the developer console: it owns the widget collection for
// the active tab, the visibility state machine, the output line buffer,
// input-string editing, and command history, and dispatches submitted
// commands to the executor boundary.
//
// A Console and everything it owns belong to a single logic context;
// all mutating calls must come from that context (see [WithOwnerCheck]).
type Console struct {
	host          Host
	executor      Executor
	editor        StringEditor
	ownerCheck    func() bool
	transitionCue func()
	locked        bool

	face   *text.Face
	shaper *text.Shaper

	vis   visibility
	lines *LineBuffer

	input           string
	inputDirty      bool
	inputShaped     *text.ShapedText
	lastInputChange int64

	history      []string // newest first
	historyPos   int
	historyLimit int

	tabs       []string
	activeTab  string
	tabContent func(tab string) []Widget

	tabWidgets []Widget
	widgets    []Widget

	pendingPress bool
	inputEnabled bool

	// Two-phase rebuild: widget actions may call Refresh while a
	// press/release pass is iterating the widget lists. The request is
	// queued and applied once after the pass completes.
	dispatching   bool
	refreshQueued bool

	editAdapter StringEditAdapter

	titleShaped  *text.ShapedText
	buildShaped  *text.ShapedText
	promptShaped *text.ShapedText
}

// New creates a Console. A [Host] is required; everything else has
// usable defaults (embedded font, single interpreter tab, silent logger).
func New(opts ...Option) *Console {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.host == nil {
		panic("devconsole: a Host is required")
	}

	face := options.face
	if face == nil {
		face = text.NewFace(text.Default(), defaultFontSize)
	}
	measure := options.measure
	if measure == nil {
		measure = face.Advance
	}

	c := &Console{
		host:          options.host,
		executor:      options.executor,
		editor:        options.editor,
		ownerCheck:    options.ownerCheck,
		transitionCue: options.transitionCue,
		locked:        options.locked,
		face:          face,
		shaper:        text.NewShaper(),
		lines:         NewLineBuffer(options.lineLimit, options.wrapWidth, measure),
		historyLimit:  options.historyLimit,
		tabs:          options.tabs,
		activeTab:     options.tabs[0],
		tabContent:    options.tabContent,
	}

	c.titleShaped = c.shaper.Shape(c.host.Title(), face)
	c.buildShaped = c.shaper.Shape(c.host.BuildInfo(), face)
	c.promptShaped = c.shaper.Shape(">", face)
	c.inputShaped = c.shaper.Shape("", face)

	c.Refresh()
	return c
}

// checkOwner panics when the configured owner check reports the call
// came from outside the owning context. A violation is a caller bug,
// never recovered.
func (c *Console) checkOwner() {
	if c.ownerCheck != nil && !c.ownerCheck() {
		panic("devconsole: call from outside the owning context")
	}
}

// baseScale resolves the host's current scale tier. Requeried on every
// use; the setting can change live.
func (c *Console) baseScale() float64 {
	return c.host.Scale().Factor()
}

// promptTab is the tab carrying the interactive prompt: the first tab.
func (c *Console) promptTab() string { return c.tabs[0] }

// State returns the current visibility state.
func (c *Console) State() State { return c.vis.state }

// ActiveTab returns the name of the currently active tab.
func (c *Console) ActiveTab() string { return c.activeTab }

// EnableInput allows command submission. Until called, Exec warns and
// ignores input; hosts call it once the interpreter is ready.
func (c *Console) EnableInput() {
	c.checkOwner()
	c.inputEnabled = true
}

// InputString returns the current input line.
func (c *Console) InputString() string { return c.input }

// SetInputString replaces the input line. Called by string-edit adapters
// as the user edits in the native dialog.
func (c *Console) SetInputString(s string) {
	c.checkOwner()
	c.setInput(s)
}

func (c *Console) setInput(s string) {
	c.input = s
	c.inputDirty = true
}

// ToggleState cycles visibility Inactive -> Mini -> Full -> Inactive.
func (c *Console) ToggleState() {
	c.checkOwner()
	c.vis.Toggle(c.host.DisplayTime())
	if c.transitionCue != nil {
		c.transitionCue()
	}
}

// Dismiss hides the console from any state. No-op when already inactive.
func (c *Console) Dismiss() {
	c.checkOwner()
	if c.vis.state == StateInactive {
		return
	}
	c.vis.Dismiss(c.host.DisplayTime())
	if c.transitionCue != nil {
		c.transitionCue()
	}
}

// Refresh rebuilds the tab buttons and the active tab's content widgets.
// Safe to call from widget actions: a refresh requested during an input
// dispatch pass is deferred until the pass completes.
func (c *Console) Refresh() {
	c.checkOwner()
	if c.dispatching {
		c.refreshQueued = true
		return
	}
	c.rebuild()
}

func (c *Console) rebuild() {
	c.refreshQueued = false
	c.widgets = nil
	c.tabWidgets = nil
	c.rebuildTabButtons()

	bs := c.baseScale()
	if c.activeTab == c.promptTab() {
		c.widgets = append(c.widgets, NewButton(
			"Exec", 0.75*bs, AnchorRight,
			-33.0*bs, 15.95*bs, 32.0*bs, 13.0*bs,
			func() { c.Exec() }))
	}
	if c.tabContent != nil {
		c.widgets = append(c.widgets, c.tabContent(c.activeTab)...)
	}
}

func (c *Console) rebuildTabButtons() {
	bs := c.baseScale()
	bwidth := 90.0 * bs
	bheight := 26.0 * bs
	bscale := 0.8 * bs
	x := float64(len(c.tabs)) * bwidth * -0.5

	for _, tab := range c.tabs {
		c.tabWidgets = append(c.tabWidgets, NewTabButton(
			tab, c.activeTab == tab, bscale, AnchorCenter,
			x, -bheight, bwidth, bheight,
			func() {
				c.activeTab = tab
				c.Refresh()
			}))
		x += bwidth
	}
}

// HandleKeyPress routes a key-down event and reports whether it was
// consumed. The two activation keys always toggle visibility (unless
// activation-locked) and are always consumed, even while inactive, so
// underlying gameplay layers never see console hotkeys.
func (c *Console) HandleKeyPress(key Key) bool {
	c.checkOwner()

	if key.isActivation() {
		if !c.locked {
			c.ToggleState()
		}
		return true
	}

	if c.vis.state == StateInactive {
		return false
	}

	// The rest are handled only while active.
	switch key {
	case KeyEscape:
		c.Dismiss()
	case KeyBackspace, KeyDelete:
		if c.input != "" {
			_, size := utf8.DecodeLastRuneInString(c.input)
			c.setInput(c.input[:len(c.input)-size])
		}
	case KeyUp:
		c.navigateHistory(1)
	case KeyDown:
		c.navigateHistory(-1)
	case KeyReturn, KeyKPEnter:
		c.Exec()
	}
	return true
}

// HandleKeyRelease reports whether a key-up event was consumed: the
// activation keys always are, and every key-up is while active.
func (c *Console) HandleKeyRelease(key Key) bool {
	if key.isActivation() {
		return true
	}
	return c.vis.state != StateInactive
}

// HandleTextInput appends a text-input event to the input line and
// reports whether it was consumed. A literal backtick is never appended;
// that glyph belongs to the activation key.
func (c *Console) HandleTextInput(s string) bool {
	c.checkOwner()
	if c.vis.state == StateInactive {
		return false
	}
	if s == "`" {
		return false
	}
	c.setInput(c.input + s)
	return true
}

// navigateHistory moves the history cursor by delta and replaces the
// input line with the entry at the cursor. The cursor is normalized into
// [1, len] on every access, so it cannot grow without bound and both
// directions wrap cleanly.
func (c *Console) navigateHistory(delta int) {
	if len(c.history) == 0 {
		return
	}
	c.historyPos += delta
	idx := floorMod(c.historyPos-1, len(c.history))
	c.historyPos = idx + 1
	c.setInput(c.history[idx])
}

func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Exec submits the current input line. Before EnableInput it warns and
// leaves all state untouched. The reserved "clear" command wipes the
// output buffer instead of dispatching. The raw input line is always
// recorded at the front of the history ring, duplicates and empties
// included, and the input line is cleared afterward regardless of
// outcome.
func (c *Console) Exec() {
	c.checkOwner()
	if !c.inputEnabled {
		Logger().Warn("devconsole: console input is not enabled yet")
		return
	}
	c.historyPos = 0
	if strings.TrimSpace(c.input) == clearCommand {
		c.lines.Clear()
	} else {
		c.submit(c.input)
	}
	c.pushHistory(c.input)
	c.setInput("")
}

func (c *Console) submit(command string) {
	if c.executor == nil {
		Logger().Warn("devconsole: no executor configured; dropping command")
		return
	}
	c.executor.Submit(command)
}

func (c *Console) pushHistory(entry string) {
	if len(c.history) < c.historyLimit {
		c.history = append(c.history, "")
	}
	copy(c.history[1:], c.history)
	c.history[0] = entry
}

// Print appends text to the console output, wrapping it into the line
// buffer. Executed commands surface their results through Print.
//
// Delivery must be serialized with the owning context: hosts whose
// executor runs elsewhere post the call back onto the logic context
// rather than calling from the executor's goroutine.
func (c *Console) Print(s string) {
	c.checkOwner()
	s = strings.ToValidUTF8(s, "�")
	c.lines.Append(s, c.host.DisplayTime())
}

// HandleMouseDown routes a mouse press and reports whether it was
// consumed. Tab widgets see it before content widgets; an unconsumed
// press below the panel boundary belongs to the game view and is not
// absorbed. A press inside the panel but outside any widget is
// remembered as a pending console interaction.
func (c *Console) HandleMouseDown(button MouseButton, x, y float64) bool {
	c.checkOwner()
	if c.vis.state == StateInactive {
		return false
	}
	w, h := c.host.ScreenSize()
	bottom := c.vis.Bottom(c.host.DisplayTime(), h, c.baseScale())

	if button == MouseLeft {
		consumed := c.dispatchPress(w, x, y-bottom)
		if consumed {
			return true
		}
	}

	if y < bottom {
		return false
	}
	if button == MouseLeft {
		c.pendingPress = true
	}
	return true
}

func (c *Console) dispatchPress(screenWidth, x, y float64) bool {
	c.dispatching = true
	consumed := false
	for _, wd := range c.tabWidgets {
		if wd.Press(screenWidth, x, y) {
			consumed = true
			break
		}
	}
	if !consumed {
		for _, wd := range c.widgets {
			if wd.Press(screenWidth, x, y) {
				consumed = true
				break
			}
		}
	}
	c.dispatching = false
	if c.refreshQueued {
		c.rebuild()
	}
	return consumed
}

// HandleMouseUp routes a mouse release. Every widget receives it, hit or
// not, so a press-and-drag-off still clears pressed state. If a pending
// console interaction exists and the release lands inside the panel on a
// host without direct keyboard input but with a native string editor,
// the external editor is invoked.
func (c *Console) HandleMouseUp(button MouseButton, x, y float64) {
	c.checkOwner()
	if button != MouseLeft {
		return
	}
	w, h := c.host.ScreenSize()
	bottom := c.vis.Bottom(c.host.DisplayTime(), h, c.baseScale())

	c.dispatchRelease(w, x, y-bottom)

	if c.pendingPress {
		c.pendingPress = false
		if y > bottom && !c.host.HasDirectKeyboardInput() && c.host.HasStringEditor() {
			c.invokeStringEditor()
		}
	}
}

func (c *Console) dispatchRelease(screenWidth, x, y float64) {
	c.dispatching = true
	for _, wd := range c.tabWidgets {
		wd.Release(screenWidth, x, y)
	}
	for _, wd := range c.widgets {
		wd.Release(screenWidth, x, y)
	}
	c.dispatching = false
	if c.refreshQueued {
		c.rebuild()
	}
}

// invokeStringEditor requests the platform's native string editor,
// resolving registration races deterministically to at most one active
// adapter.
func (c *Console) invokeStringEditor() {
	if c.editor == nil {
		return
	}
	// An adapter that is still valid stays; the request is ignored.
	if c.editAdapter != nil && !c.editAdapter.Replaceable() {
		return
	}
	adapter, err := c.editor.NewAdapter(c)
	if err != nil {
		Logger().Error("devconsole: error invoking string editor", "err", err)
		return
	}
	// A newly built adapter that is already replaceable lost a
	// concurrent registration; drop it.
	if adapter.Replaceable() {
		return
	}
	c.editAdapter = adapter
	c.editor.Invoke(adapter)
}

// FinishEditing releases the active string-edit adapter. Hosts call it
// when the native editor reports completion.
func (c *Console) FinishEditing() {
	c.checkOwner()
	c.editAdapter = nil
}

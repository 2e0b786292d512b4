package devconsole

// Key identifies a keyboard key in input events. Hosts map their native
// keycodes onto these before routing events to the console; keys with no
// mapping can be passed as KeyOther and are simply absorbed-or-not per
// the console's state.
type Key uint16

const (
	// KeyOther is any key the console has no special handling for.
	KeyOther Key = iota
	// KeyBackquote is the primary console activation key.
	KeyBackquote
	// KeyF2 is the secondary console activation key.
	KeyF2
	// KeyEscape dismisses the console.
	KeyEscape
	// KeyBackspace deletes the last input code point.
	KeyBackspace
	// KeyDelete deletes the last input code point.
	KeyDelete
	// KeyUp moves back through command history.
	KeyUp
	// KeyDown moves forward through command history.
	KeyDown
	// KeyReturn submits the current input.
	KeyReturn
	// KeyKPEnter submits the current input.
	KeyKPEnter
)

// isActivation reports whether the key toggles console visibility.
func (k Key) isActivation() bool {
	return k == KeyBackquote || k == KeyF2
}

// MouseButton identifies a mouse button in input events.
type MouseButton uint8

const (
	// MouseLeft is the primary button; the only one widgets react to.
	MouseLeft MouseButton = 1
)

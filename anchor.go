package devconsole

// Anchor selects a widget's horizontal reference point on screen.
// Anchor-local X coordinates are resolved against it, so a widget
// anchored right with a negative X hugs the right screen edge at any
// resolution.
type Anchor uint8

const (
	// AnchorLeft resolves against the left screen edge.
	AnchorLeft Anchor = iota
	// AnchorCenter resolves against the horizontal screen center.
	AnchorCenter
	// AnchorRight resolves against the right screen edge.
	AnchorRight
)

// String returns the string representation of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorLeft:
		return "Left"
	case AnchorCenter:
		return "Center"
	case AnchorRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// XOffset returns the absolute x offset for the anchor given the current
// screen width. The screen width can change between frames (window
// resize), so callers must re-resolve every call rather than cache the
// result.
func (a Anchor) XOffset(screenWidth float64) float64 {
	switch a {
	case AnchorRight:
		return screenWidth
	case AnchorCenter:
		return screenWidth * 0.5
	default:
		return 0
	}
}

package devconsole

// Scale is the host's current UI scale tier.
type Scale uint8

const (
	// ScaleLarge is for large displays (desktop monitors).
	ScaleLarge Scale = iota
	// ScaleMedium is for medium displays (tablets).
	ScaleMedium
	// ScaleSmall is for small displays (phones).
	ScaleSmall
)

// String returns the string representation of the scale tier.
func (s Scale) String() string {
	switch s {
	case ScaleLarge:
		return "Large"
	case ScaleMedium:
		return "Medium"
	case ScaleSmall:
		return "Small"
	default:
		return "Unknown"
	}
}

// Factor returns the console's base scale factor for the tier.
// Smaller displays get a larger factor so touch targets stay usable.
func (s Scale) Factor() float64 {
	switch s {
	case ScaleLarge:
		return 1.5
	case ScaleMedium:
		return 1.75
	default:
		return 2.0
	}
}

// Host exposes the configuration the console queries but does not own.
// All values can change between frames (window resize, scale setting
// changes), so the console re-queries them every call and caches nothing.
type Host interface {
	// DisplayTime returns the current display time in seconds. It drives
	// visibility transitions and line timestamps and must be monotonic
	// within a session.
	DisplayTime() float64

	// RealTime returns wall-clock milliseconds. It drives the caret blink.
	RealTime() int64

	// ScreenSize returns the current virtual screen width and height.
	ScreenSize() (w, h float64)

	// Scale returns the current UI scale tier.
	Scale() Scale

	// Title returns the application title line drawn in the panel's
	// top-left corner (app name, version, build flavor).
	Title() string

	// BuildInfo returns the build stamp drawn in the panel's top-right
	// corner.
	BuildInfo() string

	// HasDirectKeyboardInput reports whether a hardware keyboard is
	// currently feeding the console text events.
	HasDirectKeyboardInput() bool

	// HasStringEditor reports whether the platform offers a native
	// string-editing affordance (on-screen keyboard dialog).
	HasStringEditor() bool
}

// Executor is the command-execution boundary. Submit hands command text
// to an external interpreter running on its own serialized execution
// stream and returns immediately; the console never blocks on a result.
// Output the command wants to surface comes back through
// [Console.Print].
type Executor interface {
	Submit(command string)
}

// StringEditAdapter represents one registration with the platform's
// native string editor. Replaceable reports whether the adapter lost
// (or has given up) its claim to be the active editor target.
type StringEditAdapter interface {
	Replaceable() bool
}

// StringEditor is the platform string-editing boundary, used when the
// host has no direct keyboard input. NewAdapter constructs a
// registration targeting the console; Invoke presents the native editor
// for an adapter that won registration. The host calls
// [Console.SetInputString] and [Console.FinishEditing] as the user edits
// and closes the dialog.
type StringEditor interface {
	NewAdapter(c *Console) (StringEditAdapter, error)
	Invoke(adapter StringEditAdapter)
}

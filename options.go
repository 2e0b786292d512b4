package devconsole

import "github.com/gogpu/devconsole/text"

// Option configures a Console during creation.
// Use functional options to customize Console behavior.
//
// Example:
//
//	console := devconsole.New(
//	    devconsole.WithHost(host),
//	    devconsole.WithExecutor(interp),
//	    devconsole.WithTabs("Python", "Logs"),
//	)
type Option func(*options)

// options holds optional configuration for Console creation.
type options struct {
	host          Host
	executor      Executor
	editor        StringEditor
	ownerCheck    func() bool
	transitionCue func()
	locked        bool
	face          *text.Face
	measure       MeasureFunc
	tabs          []string
	tabContent    func(tab string) []Widget
	lineLimit     int
	historyLimit  int
	wrapWidth     float64
}

// defaultOptions returns the default console options.
func defaultOptions() options {
	return options{
		tabs:         []string{defaultTab},
		lineLimit:    defaultLineLimit,
		historyLimit: defaultHistoryLimit,
		wrapWidth:    defaultWrapWidth,
	}
}

// WithHost sets the host configuration boundary. Required.
func WithHost(h Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithExecutor sets the command-execution boundary. Without one,
// submitted commands are dropped with a warning.
func WithExecutor(e Executor) Option {
	return func(o *options) {
		o.executor = e
	}
}

// WithStringEditor sets the platform string-editing boundary, used on
// hosts without direct keyboard input (mobile on-screen keyboards).
func WithStringEditor(e StringEditor) Option {
	return func(o *options) {
		o.editor = e
	}
}

// WithOwnerCheck installs the owning-context assertion: every mutating
// call panics when check returns false. Hosts with a dedicated logic
// goroutine pass a check that verifies the caller is on it.
//
// Example:
//
//	devconsole.WithOwnerCheck(app.InLogicContext)
func WithOwnerCheck(check func() bool) Option {
	return func(o *options) {
		o.ownerCheck = check
	}
}

// WithTransitionCue installs a callback fired on every visibility
// transition, typically to play a short sound.
func WithTransitionCue(cue func()) Option {
	return func(o *options) {
		o.transitionCue = cue
	}
}

// WithActivationLocked disables the activation keys' toggle behavior for
// locked-down build variants. The keys are still reported consumed.
func WithActivationLocked(locked bool) Option {
	return func(o *options) {
		o.locked = locked
	}
}

// WithFace sets the font face used for all console text. Defaults to
// the embedded Go Regular face.
func WithFace(f *text.Face) Option {
	return func(o *options) {
		o.face = f
	}
}

// WithMeasure overrides the width measurement used for output wrapping.
// Defaults to the face's advance width. Mainly useful in tests.
func WithMeasure(m MeasureFunc) Option {
	return func(o *options) {
		o.measure = m
	}
}

// WithTabs sets the ordered tab names. The first tab carries the
// interactive prompt; it is also the initially active tab. At least one
// name is required.
func WithTabs(names ...string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.tabs = names
		}
	}
}

// WithTabContent installs a hook that supplies content widgets for a
// tab when it becomes active. The prompt tab's Exec button is built in
// regardless.
func WithTabContent(build func(tab string) []Widget) Option {
	return func(o *options) {
		o.tabContent = build
	}
}

// WithLineLimit bounds the finalized output-line history.
func WithLineLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.lineLimit = n
		}
	}
}

// WithHistoryLimit bounds the command-history ring.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.historyLimit = n
		}
	}
}

// WithWrapWidth sets the rendered-width budget for one output line, in
// virtual units at text scale 1.
func WithWrapWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.wrapWidth = w
		}
	}
}

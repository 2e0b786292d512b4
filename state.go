package devconsole

// State is the console's visibility state.
type State uint8

const (
	// StateInactive means the console is hidden and not accepting input.
	StateInactive State = iota
	// StateMini shows a compact bar with tab and button affordances only.
	StateMini
	// StateFull shows the large overlay with the prompt and output history.
	StateFull
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "Inactive"
	case StateMini:
		return "Mini"
	case StateFull:
		return "Full"
	default:
		return "Unknown"
	}
}

const (
	// transitionSeconds is how long a slide between visibility states takes.
	transitionSeconds = 0.1

	// fullCoverage is how much of the screen the console covers at full size.
	fullCoverage = 0.9

	// miniSize is the height of the compact bar in virtual units,
	// before scaling.
	miniSize = 90.0
)

// visibility tracks the console's state machine plus the data needed to
// interpolate an in-flight slide: the previously displayed state and the
// display time the current transition began. A zero transitionStart means
// no transition has ever started and nothing should be drawn.
type visibility struct {
	state           State
	statePrev       State
	transitionStart float64
}

// Toggle cycles Inactive -> Mini -> Full -> Inactive and starts a new
// transition at now.
func (v *visibility) Toggle(now float64) {
	v.statePrev = v.state
	switch v.state {
	case StateInactive:
		v.state = StateMini
	case StateMini:
		v.state = StateFull
	case StateFull:
		v.state = StateInactive
	}
	v.transitionStart = now
}

// Dismiss forces the console to Inactive from any state. No-op when
// already inactive.
func (v *visibility) Dismiss(now float64) {
	if v.state == StateInactive {
		return
	}
	v.statePrev = v.state
	v.state = StateInactive
	v.transitionStart = now
}

// Hidden reports whether there is nothing to draw at now: either no
// transition has ever started, or a transition to Inactive has fully
// completed.
func (v *visibility) Hidden(now float64) bool {
	if v.transitionStart <= 0 {
		return true
	}
	return v.state == StateInactive && now-v.transitionStart >= transitionSeconds
}

// target returns the panel boundary implied by a settled state.
func (v *visibility) target(s State, screenHeight, scale float64) float64 {
	switch s {
	case StateMini:
		return screenHeight - miniSize*scale
	case StateFull:
		return screenHeight - screenHeight*fullCoverage
	default:
		return screenHeight
	}
}

// Bottom returns the current panel boundary in virtual units. While a
// transition is in flight the boundary is linearly interpolated from the
// previous state's position to the current state's position; otherwise it
// is the current state's settled position.
func (v *visibility) Bottom(now, screenHeight, scale float64) float64 {
	bottom := v.target(v.state, screenHeight, scale)
	elapsed := now - v.transitionStart
	if elapsed < transitionSeconds {
		ratio := elapsed / transitionSeconds
		from := v.target(v.statePrev, screenHeight, scale)
		bottom = bottom*ratio + from*(1.0-ratio)
	}
	return bottom
}

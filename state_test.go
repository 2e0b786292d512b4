package devconsole

import (
	"math"
	"testing"
)

func TestVisibilityToggleCycle(t *testing.T) {
	var v visibility
	want := []State{StateMini, StateFull, StateInactive, StateMini, StateFull, StateInactive}
	for i, w := range want {
		v.Toggle(float64(i + 1))
		if v.state != w {
			t.Fatalf("toggle %d: state = %v, want %v", i+1, v.state, w)
		}
	}
	// Six toggles (N mod 3 == 0) land back on Inactive.
	if v.state != StateInactive {
		t.Errorf("after 6 toggles state = %v, want Inactive", v.state)
	}
}

func TestVisibilityTogglePreservesPrev(t *testing.T) {
	var v visibility
	v.Toggle(1) // Inactive -> Mini
	v.Toggle(2) // Mini -> Full
	if v.statePrev != StateMini {
		t.Errorf("statePrev = %v, want Mini", v.statePrev)
	}
	if v.transitionStart != 2 {
		t.Errorf("transitionStart = %v, want 2", v.transitionStart)
	}
}

func TestVisibilityDismiss(t *testing.T) {
	tests := []struct {
		name    string
		toggles int
	}{
		{"from mini", 1},
		{"from full", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v visibility
			for i := 0; i < tt.toggles; i++ {
				v.Toggle(float64(i + 1))
			}
			prev := v.state
			v.Dismiss(10)
			if v.state != StateInactive {
				t.Errorf("state = %v, want Inactive", v.state)
			}
			if v.statePrev != prev {
				t.Errorf("statePrev = %v, want %v", v.statePrev, prev)
			}
			if v.transitionStart != 10 {
				t.Errorf("transitionStart = %v, want 10", v.transitionStart)
			}
		})
	}

	t.Run("already inactive", func(t *testing.T) {
		var v visibility
		v.Dismiss(5)
		if v.transitionStart != 0 {
			t.Errorf("dismiss from inactive started a transition at %v", v.transitionStart)
		}
	})
}

func TestVisibilityHidden(t *testing.T) {
	var v visibility
	if !v.Hidden(100) {
		t.Error("hidden before first transition = false, want true")
	}

	v.Toggle(1)
	if v.Hidden(1.05) {
		t.Error("hidden while sliding in = true, want false")
	}
	if v.Hidden(50) {
		t.Error("hidden while settled visible = true, want false")
	}

	v.Toggle(2) // Full
	v.Toggle(3) // Inactive
	if v.Hidden(3.05) {
		t.Error("hidden while sliding out = true, want false")
	}
	if !v.Hidden(3 + transitionSeconds) {
		t.Error("hidden after slide-out completed = false, want true")
	}
}

func TestVisibilityBottom(t *testing.T) {
	const (
		screenH = 600.0
		scale   = 1.5
	)
	miniBottom := screenH - miniSize*scale       // 465
	fullBottom := screenH - screenH*fullCoverage // 60

	var v visibility
	v.Toggle(1) // -> Mini

	tests := []struct {
		name string
		now  float64
		want float64
	}{
		// Slide from offscreen (600) to mini (465).
		{"transition start", 1.0, screenH},
		{"transition midpoint", 1.05, (screenH + miniBottom) / 2},
		{"transition complete", 1.0 + transitionSeconds, miniBottom},
		{"long after", 50, miniBottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Bottom(tt.now, screenH, scale)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Bottom(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}

	t.Run("full target", func(t *testing.T) {
		v.Toggle(2) // Mini -> Full
		got := v.Bottom(10, screenH, scale)
		if math.Abs(got-fullBottom) > 1e-9 {
			t.Errorf("settled full Bottom = %v, want %v", got, fullBottom)
		}
	})

	t.Run("interpolates from previous displayed state", func(t *testing.T) {
		// Mid-slide from Full back to Inactive: halfway between the
		// full position and offscreen.
		v.Toggle(20) // Full -> Inactive
		got := v.Bottom(20.05, screenH, scale)
		want := (fullBottom + screenH) / 2
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("mid slide-out Bottom = %v, want %v", got, want)
		}
	})
}

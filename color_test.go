package devconsole

import (
	"image/color"
	"testing"
)

func TestRGBAColor(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want color.NRGBA
	}{
		{"opaque white", RGB(1, 1, 1), color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"opaque black", RGB(0, 0, 0), color.NRGBA{A: 255}},
		{"half gray", RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}, color.NRGBA{R: 127, G: 127, B: 127, A: 255}},
		{"translucent", RGBA{R: 1, G: 0, B: 0, A: 0.5}, color.NRGBA{R: 255, A: 127}},
		{"clamped high", RGBA{R: 2, G: 1.5, B: 1, A: 1}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"clamped low", RGBA{R: -1, G: 0, B: 0, A: 1}, color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Color()
			if got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBAWithAlpha(t *testing.T) {
	base := RGB(0.25, 0.2, 0.3)
	faded := base.WithAlpha(0.1)

	if faded != (RGBA{R: 0.25, G: 0.2, B: 0.3, A: 0.1}) {
		t.Errorf("WithAlpha(0.1) = %v, want channels kept with new alpha", faded)
	}
	// Value semantics: the receiver is untouched.
	if base.A != 1.0 {
		t.Errorf("WithAlpha mutated the receiver: alpha %v", base.A)
	}
}

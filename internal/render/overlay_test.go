package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/vovakirdan/flaptiles/internal/core"
)

func TestFormatInstant(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "+0.500"},
		{-0.05, "-0.050"},
		{0, "+0.000"},
		{math.Copysign(0, -1), "+0.000"},
		{1, "+1.000"},
		{-0.01, "-0.010"},
	}
	for _, tc := range tests {
		if got := FormatInstant(tc.in); got != tc.want {
			t.Errorf("FormatInstant(%v) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCumulative(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{-1.2, "Σ -1.20"},
		{0, "Σ +0.00"},
		{12.346, "Σ +12.35"},
	}
	for _, tc := range tests {
		if got := FormatCumulative(tc.in); got != tc.want {
			t.Errorf("FormatCumulative(%v) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestInstantColorBuckets(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want color.RGBA
	}{
		{"just above 0.5", 0.5001, core.ColorRewardBigPositive},
		{"pipe passed", 1, core.ColorRewardBigPositive},
		{"exactly 0.5", 0.5, core.ColorRewardSmallPositive},
		{"tiny positive", 0.0001, core.ColorRewardSmallPositive},
		{"zero", 0, core.ColorRewardSmallNegative},
		{"step penalty", -0.01, core.ColorRewardSmallNegative},
		{"exactly -0.1", -0.1, core.ColorRewardMedNegative},
		{"just above -0.5", -0.4999, core.ColorRewardMedNegative},
		{"exactly -0.5", -0.5, core.ColorRewardBigNegative},
		{"death", -1, core.ColorRewardBigNegative},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InstantColor(tc.in); got != tc.want {
				t.Errorf("InstantColor(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCumulativeColor(t *testing.T) {
	if CumulativeColor(0) != core.ColorCumulativePositive {
		t.Error("zero cumulative should use the positive color")
	}
	if CumulativeColor(3) != core.ColorCumulativePositive {
		t.Error("positive cumulative should use the positive color")
	}
	if CumulativeColor(-0.01) != core.ColorCumulativeNegative {
		t.Error("negative cumulative should use the negative color")
	}
}

func TestRewardOverlayLayout(t *testing.T) {
	rec := newRecorder(400, 400)
	area := core.RectF{X: 100, Y: 100, W: 200, H: 200}
	drawRewardOverlay(rec, area, Reward{Instant: -0.01, Cumulative: -1.2, HasCumulative: true})

	texts := rec.filter("text")
	if len(texts) != 3*9 {
		t.Fatalf("drew %d text ops, expected 27", len(texts))
	}

	// Every ninth op is a line's fill, drawn after its outline.
	fills := []op{texts[8], texts[17], texts[26]}
	wantText := []string{"Σ -1.20", "-0.010", "reward"}
	for i, f := range fills {
		if f.text != wantText[i] {
			t.Errorf("line %d = %q, expected %q", i, f.text, wantText[i])
		}
		if f.logical.Right() != area.Right()-overlayMargin {
			t.Errorf("line %q right edge = %v, expected %v", f.text, f.logical.Right(), area.Right()-overlayMargin)
		}
	}
	if fills[0].logical.Bottom() != area.Bottom()-overlayMargin {
		t.Errorf("bottom line ends at %v, expected %v", fills[0].logical.Bottom(), area.Bottom()-overlayMargin)
	}
	if fills[1].logical.Bottom() != fills[0].logical.Y || fills[2].logical.Bottom() != fills[1].logical.Y {
		t.Error("lines should stack upward without gaps")
	}
	if fills[0].col != core.ColorCumulativeNegative || fills[1].col != core.ColorRewardSmallNegative {
		t.Error("lines use the wrong colors")
	}

	for _, o := range texts[:8] {
		if o.col != core.ColorOutline {
			t.Error("outline copies should use the outline color")
		}
		dx := o.logical.X - fills[0].logical.X
		dy := o.logical.Y - fills[0].logical.Y
		cardinal := (math.Abs(dx) == 2 && dy == 0) || (dx == 0 && math.Abs(dy) == 2)
		diagonal := math.Abs(dx) == 1 && math.Abs(dy) == 1
		if !cardinal && !diagonal {
			t.Errorf("outline offset (%v, %v) is neither cardinal at 2 nor diagonal at 1", dx, dy)
		}
	}
}

func TestRewardOverlayWithoutCumulative(t *testing.T) {
	rec := newRecorder(200, 200)
	drawRewardOverlay(rec, core.RectF{W: 200, H: 200}, Reward{Instant: 1})
	if n := len(rec.filter("text")); n != 2*9 {
		t.Errorf("drew %d text ops, expected 18", n)
	}
}

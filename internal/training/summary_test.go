package training

import (
	"strings"
	"testing"
)

// TestSummaryMessageSwimming verifies the full rendered line for the
// swimming reference sample, including rounding 0.9936 km to three decimals.
func TestSummaryMessageSwimming(t *testing.T) {
	s := NewSummary(NewSwimming(720, 1, 80, 25, 40))

	want := "Activity type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; " +
		"Mean speed: 1.000 km/h; Calories burned: 336.000."
	if got := s.Message(); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

// TestSummaryMessageRunning verifies the rendered line for the running
// reference sample.
func TestSummaryMessageRunning(t *testing.T) {
	s := NewSummary(NewRunning(15000, 1, 75))

	want := "Activity type: Running; Duration: 1.000 h.; Distance: 9.750 km; " +
		"Mean speed: 9.750 km/h; Calories burned: 699.750."
	if got := s.Message(); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

// TestSummaryMessageThreeDecimals verifies that every numeric field keeps
// exactly three decimals regardless of magnitude.
func TestSummaryMessageThreeDecimals(t *testing.T) {
	s := Summary{Label: "Running", Duration: 0.5, Distance: 123.456789, MeanSpeed: 246.913578, Calories: 7}

	msg := s.Message()
	for _, frag := range []string{"0.500 h.", "123.457 km;", "246.914 km/h", "7.000."} {
		if !strings.Contains(msg, frag) {
			t.Errorf("message %q missing %q", msg, frag)
		}
	}
}

// TestSummaryIdempotent verifies that summarising the same workout twice
// yields byte-identical output.
func TestSummaryIdempotent(t *testing.T) {
	w := NewWalking(9000, 1, 75, 180)

	first := NewSummary(w).Message()
	second := NewSummary(w).Message()
	if first != second {
		t.Errorf("messages differ: %q vs %q", first, second)
	}
}

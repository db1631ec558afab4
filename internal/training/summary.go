package training

import "fmt"

// summaryTemplate renders all four numbers with exactly three decimals
// regardless of magnitude.
const summaryTemplate = "Activity type: %s; " +
	"Duration: %.3f h.; " +
	"Distance: %.3f km; " +
	"Mean speed: %.3f km/h; " +
	"Calories burned: %.3f."

// Summary is the derived, read-only view of a finished workout used for
// display. It is computed once and never mutated.
type Summary struct {
	Label     string
	Duration  float64
	Distance  float64
	MeanSpeed float64
	Calories  float64
}

// NewSummary computes the display summary for a workout.
func NewSummary(w Workout) Summary {
	return Summary{
		Label:     w.Type().String(),
		Duration:  w.Duration(),
		Distance:  w.Distance(),
		MeanSpeed: w.MeanSpeed(),
		Calories:  w.Calories(),
	}
}

// Message renders the summary as a single fixed-format line. Printing is the
// caller's business.
func (s Summary) Message() string {
	return fmt.Sprintf(summaryTemplate, s.Label, s.Duration, s.Distance, s.MeanSpeed, s.Calories)
}

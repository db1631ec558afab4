package training

import "math"

// Calorie coefficients for sports walking.
const (
	walkWeightFactor = 0.035
	walkSpeedFactor  = 0.029
)

// Walking is a sports-walking session. Height feeds the calorie formula.
type Walking struct {
	session
	heightCm float64
}

// NewWalking builds a walking workout from sensor fields.
func NewWalking(action int, durationHours, weightKg, heightCm float64) Walking {
	return Walking{
		session:  session{action: action, durationHours: durationHours, weightKg: weightKg},
		heightCm: heightCm,
	}
}

func (w Walking) Type() Type {
	return TypeWalking
}

func (w Walking) Distance() float64 {
	return stepDistance(w.action, StepLengthM)
}

func (w Walking) MeanSpeed() float64 {
	return w.Distance() / w.durationHours
}

// Calories keeps the reference tracker's floor division: squared speed is
// truncated after dividing by height, so slow sessions contribute a zero
// speed term.
func (w Walking) Calories() float64 {
	speed := w.MeanSpeed()
	speedTerm := math.Floor(speed * speed / w.heightCm)
	return speedTerm*walkSpeedFactor*w.weightKg +
		walkWeightFactor*w.weightKg*w.durationHours*MinutesPerHour
}

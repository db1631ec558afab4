package training

// Calorie coefficients for running, from the tracker's calibration.
const (
	runSpeedFactor = 18
	runSpeedOffset = 20
)

// Running is a running session.
type Running struct {
	session
}

// NewRunning builds a running workout from sensor fields.
func NewRunning(action int, durationHours, weightKg float64) Running {
	return Running{session{action: action, durationHours: durationHours, weightKg: weightKg}}
}

func (r Running) Type() Type {
	return TypeRunning
}

func (r Running) Distance() float64 {
	return stepDistance(r.action, StepLengthM)
}

func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.durationHours
}

func (r Running) Calories() float64 {
	return (runSpeedFactor*r.MeanSpeed() - runSpeedOffset) *
		r.weightKg / MetersPerKm * r.durationHours * MinutesPerHour
}

package training

// Calorie coefficients for swimming.
const (
	swimSpeedOffset  = 1.1
	swimWeightFactor = 2
)

// Swimming is a pool swimming session. Mean speed comes from pool geometry
// rather than stroke distance.
type Swimming struct {
	session
	poolLengthM float64
	poolLaps    int
}

// NewSwimming builds a swimming workout from sensor fields.
func NewSwimming(action int, durationHours, weightKg, poolLengthM float64, poolLaps int) Swimming {
	return Swimming{
		session:     session{action: action, durationHours: durationHours, weightKg: weightKg},
		poolLengthM: poolLengthM,
		poolLaps:    poolLaps,
	}
}

func (s Swimming) Type() Type {
	return TypeSwimming
}

func (s Swimming) Distance() float64 {
	return stepDistance(s.action, StrokeLengthM)
}

func (s Swimming) MeanSpeed() float64 {
	return s.poolLengthM * float64(s.poolLaps) / MetersPerKm / s.durationHours
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedOffset) * swimWeightFactor * s.weightKg
}

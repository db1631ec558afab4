// Package training holds the workout record types and the closed-form
// distance, mean speed and calorie formulas for each activity variant.
package training

// Unit conversion factors shared by all variants.
const (
	MetersPerKm    = 1000
	MinutesPerHour = 60
)

// Sensor-to-distance constants: how far one action moves the athlete.
const (
	StepLengthM   = 0.65 // running and walking
	StrokeLengthM = 1.38 // swimming
)

// Type identifies a workout variant.
type Type int

const (
	TypeRunning Type = iota
	TypeWalking
	TypeSwimming
)

// labels maps each variant to its fixed display string. Display text is
// explicit data here, never derived from a Go type name.
var labels = map[Type]string{
	TypeRunning:  "Running",
	TypeWalking:  "SportsWalking",
	TypeSwimming: "Swimming",
}

// String returns the display label for the variant.
func (t Type) String() string {
	return labels[t]
}

// Workout is one recorded training session. All methods are pure: the same
// workout always reports the same stats.
type Workout interface {
	// Type identifies the activity variant.
	Type() Type
	// Duration returns the session length in hours.
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// Calories returns the energy burned during the session, in kcal.
	Calories() float64
}

// session carries the sensor fields common to every variant.
type session struct {
	action        int     // steps or strokes counted by the sensor
	durationHours float64 // must be > 0, enforced at decode
	weightKg      float64 // must be > 0, enforced at decode
}

func (s session) Duration() float64 {
	return s.durationHours
}

// stepDistance converts an action count to km for a given action length.
func stepDistance(action int, lengthM float64) float64 {
	return float64(action) * lengthM / MetersPerKm
}

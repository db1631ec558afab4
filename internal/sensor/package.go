// Package sensor decodes raw tracker readings into typed workouts.
package sensor

import (
	"errors"
	"fmt"

	"github.com/single1709/hw-python-oop/internal/training"
)

// Workout codes emitted by the tracker.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// Decode failure kinds. Wrapped errors carry the offending code or values;
// match with errors.Is.
var (
	ErrUnknownCode = errors.New("unknown workout code")
	ErrParamCount  = errors.New("wrong parameter count")
	ErrParamValue  = errors.New("parameter out of range")
)

// paramCounts is the expected positional-parameter arity per code.
var paramCounts = map[string]int{
	CodeSwimming: 5, // action, duration, weight, pool length, pool laps
	CodeRunning:  3, // action, duration, weight
	CodeWalking:  4, // action, duration, weight, height
}

// Package is one raw sensor reading: a workout code plus the positional
// numeric parameters for that variant.
type Package struct {
	Code   string
	Params []float64
}

// Decode validates a reading and builds the matching workout. A reading
// either decodes fully or fails; nothing is constructed on error.
func Decode(pkg Package) (training.Workout, error) {
	want, ok := paramCounts[pkg.Code]
	if !ok {
		return nil, fmt.Errorf("decoding reading: %w: %q", ErrUnknownCode, pkg.Code)
	}
	if len(pkg.Params) != want {
		return nil, fmt.Errorf("decoding %s reading: %w: got %d, want %d",
			pkg.Code, ErrParamCount, len(pkg.Params), want)
	}

	action := int(pkg.Params[0])
	duration := pkg.Params[1]
	weight := pkg.Params[2]

	// A sensor cannot count backwards; a negative action count would drive
	// distance and speed negative.
	if action < 0 {
		return nil, fmt.Errorf("decoding %s reading: %w: action count %d", pkg.Code, ErrParamValue, action)
	}
	// Duration divides speed and weight scales every calorie formula;
	// neither may be zero or negative.
	if duration <= 0 {
		return nil, fmt.Errorf("decoding %s reading: %w: duration %v", pkg.Code, ErrParamValue, duration)
	}
	if weight <= 0 {
		return nil, fmt.Errorf("decoding %s reading: %w: weight %v", pkg.Code, ErrParamValue, weight)
	}

	switch pkg.Code {
	case CodeSwimming:
		poolLength := pkg.Params[3]
		poolLaps := int(pkg.Params[4])
		if poolLength <= 0 || poolLaps <= 0 {
			return nil, fmt.Errorf("decoding %s reading: %w: pool %vx%d",
				pkg.Code, ErrParamValue, poolLength, poolLaps)
		}
		return training.NewSwimming(action, duration, weight, poolLength, poolLaps), nil
	case CodeRunning:
		return training.NewRunning(action, duration, weight), nil
	default: // CodeWalking
		height := pkg.Params[3]
		if height <= 0 {
			return nil, fmt.Errorf("decoding %s reading: %w: height %v", pkg.Code, ErrParamValue, height)
		}
		return training.NewWalking(action, duration, weight, height), nil
	}
}

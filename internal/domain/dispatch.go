package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownWorkoutType is returned when a package carries a code outside the known set.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrUnimplementedFormula is returned when a known code has no workout constructor registered.
	ErrUnimplementedFormula = errors.New("unimplemented formula")
	// ErrArgumentCount is returned when the number of arguments does not match the workout.
	ErrArgumentCount = errors.New("unexpected argument count")
	// ErrArgumentType is returned when an argument cannot be used for its field.
	ErrArgumentType = errors.New("invalid argument")
	// ErrDivisionByZero is returned when a reading used as a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Code is the short sensor code that selects a workout variant.
type Code string

const (
	CodeSwimming      Code = "SWM"
	CodeRunning       Code = "RUN"
	CodeSportsWalking Code = "WLK"
)

// Codes lists every recognized code.
func Codes() []Code {
	return []Code{CodeSwimming, CodeRunning, CodeSportsWalking}
}

// ParseCode validates a raw code.
func ParseCode(raw string) (Code, error) {
	code := Code(raw)
	switch code {
	case CodeSwimming, CodeRunning, CodeSportsWalking:
		return code, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutType, raw)
	}
}

type constructor struct {
	fields []string
	build  func(args []float64) (Workout, error)
}

var constructors = map[Code]constructor{
	CodeSwimming: {
		fields: []string{"action", "duration", "weight", "pool_length", "pool_laps"},
		build: func(args []float64) (Workout, error) {
			action, err := count("action", args[0])
			if err != nil {
				return nil, err
			}
			laps, err := count("pool_laps", args[4])
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, args[1], args[2], args[3], laps), nil
		},
	},
	CodeRunning: {
		fields: []string{"action", "duration", "weight"},
		build: func(args []float64) (Workout, error) {
			action, err := count("action", args[0])
			if err != nil {
				return nil, err
			}
			return NewRunning(action, args[1], args[2]), nil
		},
	},
	CodeSportsWalking: {
		fields: []string{"action", "duration", "weight", "height"},
		build: func(args []float64) (Workout, error) {
			action, err := count("action", args[0])
			if err != nil {
				return nil, err
			}
			if args[3] == 0 {
				return nil, fmt.Errorf("%w: height is zero", ErrDivisionByZero)
			}
			return NewSportsWalking(action, args[1], args[2], args[3]), nil
		},
	},
}

// Build maps a code and its positional arguments onto a workout.
func Build(raw string, args []float64) (Workout, error) {
	code, err := ParseCode(raw)
	if err != nil {
		return nil, err
	}

	ctor, ok := constructors[code]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrUnimplementedFormula, code)
	}
	if len(args) != len(ctor.fields) {
		return nil, fmt.Errorf("%w: %s expects %d (%v), got %d", ErrArgumentCount, code, len(ctor.fields), ctor.fields, len(args))
	}
	for i, v := range args {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s is not finite", ErrArgumentType, ctor.fields[i])
		}
	}
	if args[1] == 0 {
		return nil, fmt.Errorf("%w: duration is zero", ErrDivisionByZero)
	}

	return ctor.build(args)
}

// maxCount is the largest magnitude a float64 represents with every whole number intact.
const maxCount = 1 << 53

func count(field string, v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrArgumentType, field, v)
	}
	if math.Abs(v) > maxCount {
		return 0, fmt.Errorf("%w: %s out of range, got %v", ErrArgumentType, field, v)
	}
	return int(v), nil
}

package domain

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// ErrInvalidInputData is returned when a workout package cannot be turned into a Training.
var ErrInvalidInputData = errors.New("invalid input data")

// Workout codes accepted by ReadPackage.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

type param struct {
	name        string
	integer     bool
	positive    bool
	nonNegative bool
}

type variant struct {
	params []param
	build  func(values []float64) Training
}

func withCommon(extra ...param) []param {
	common := []param{
		{name: "action", integer: true, nonNegative: true},
		{name: "duration", positive: true},
		{name: "weight", nonNegative: true},
	}
	return append(common, extra...)
}

var registry = map[string]variant{
	CodeSwimming: {
		params: withCommon(
			param{name: "length_pool", nonNegative: true},
			param{name: "count_pool", integer: true, nonNegative: true},
		),
		build: func(v []float64) Training {
			return NewSwimming(int(v[0]), v[1], v[2], v[3], int(v[4]))
		},
	},
	CodeRunning: {
		params: withCommon(),
		build: func(v []float64) Training {
			return NewRunning(int(v[0]), v[1], v[2])
		},
	},
	CodeWalking: {
		params: withCommon(param{name: "height", positive: true}),
		build: func(v []float64) Training {
			return NewSportsWalking(int(v[0]), v[1], v[2], v[3])
		},
	},
}

// Codes returns the supported workout codes in sorted order.
func Codes() []string {
	return slices.Sorted(maps.Keys(registry))
}

// ReadPackage builds the Training registered for code, assigning data to the
// variant's parameters by position.
func ReadPackage(code string, data []float64) (Training, error) {
	v, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: unknown workout type %q", ErrInvalidInputData, code)
	}
	if len(data) != len(v.params) {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidInputData, code, len(v.params), len(data))
	}
	for i, p := range v.params {
		if err := p.check(data[i]); err != nil {
			return nil, fmt.Errorf("%w: %s %v", ErrInvalidInputData, code, err)
		}
	}
	return v.build(data), nil
}

func (p param) check(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", p.name)
	}
	if p.integer && (value != math.Trunc(value) || math.Abs(value) > math.MaxInt32) {
		return fmt.Errorf("%s must be an integer, got %v", p.name, value)
	}
	if p.positive && value <= 0 {
		return fmt.Errorf("%s must be > 0, got %v", p.name, value)
	}
	if p.nonNegative && value < 0 {
		return fmt.Errorf("%s must be >= 0, got %v", p.name, value)
	}
	return nil
}

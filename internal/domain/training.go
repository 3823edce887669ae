// Package domain defines the business logic for the workout service.
package domain

import "math"

const (
	// LenStep is the distance covered by a single step, in metres.
	LenStep = 0.65
	// LenStroke is the distance covered by a single swimming stroke, in metres.
	LenStroke = 1.38
	// MInKm converts metres to kilometres.
	MInKm = 1000
	// MinInH converts hours to minutes.
	MinInH = 60
)

const (
	runningSpeedMul   = 18
	runningSpeedShift = 20

	walkingKcalPerMin     = 0.035
	walkingSpeedHeightMul = 0.029

	swimmingSpeedShift = 1.1
	swimmingWeightMul  = 2
)

// Training is implemented by every workout variant.
type Training interface {
	// Name is the display name used in summaries.
	Name() string
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	Info() InfoMessage
}

var (
	_ Training = Running{}
	_ Training = SportsWalking{}
	_ Training = Swimming{}
)

// training holds the readings shared by all variants. It has no calorie
// formula, so only the concrete variants satisfy Training.
type training struct {
	Action   int
	Duration float64
	Weight   float64
}

func (t training) distance(stepLen float64) float64 {
	return float64(t.Action) * stepLen / MInKm
}

func (t training) speed(distance float64) float64 {
	return distance / t.Duration
}

func info(t Training, duration float64) InfoMessage {
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// Running is a run measured in steps.
type Running struct {
	training
}

// NewRunning constructs a Running workout.
func NewRunning(action int, duration, weight float64) Running {
	return Running{training{Action: action, Duration: duration, Weight: weight}}
}

func (Running) Name() string { return "Running" }

func (r Running) Distance() float64 { return r.distance(LenStep) }

func (r Running) MeanSpeed() float64 { return r.speed(r.Distance()) }

// SpentCalories returns kilocalories burned over the run.
func (r Running) SpentCalories() float64 {
	return (runningSpeedMul*r.MeanSpeed() - runningSpeedShift) *
		r.Weight / MInKm * MinInH * r.Duration
}

// Info summarises the run.
func (r Running) Info() InfoMessage { return info(r, r.Duration) }

// SportsWalking is a walk measured in steps; the walker's height feeds the calorie formula.
type SportsWalking struct {
	training
	Height float64
}

// NewSportsWalking constructs a SportsWalking workout.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: training{Action: action, Duration: duration, Weight: weight},
		Height:   height,
	}
}

func (SportsWalking) Name() string { return "SportsWalking" }

func (w SportsWalking) Distance() float64 { return w.distance(LenStep) }

func (w SportsWalking) MeanSpeed() float64 { return w.speed(w.Distance()) }

// SpentCalories returns kilocalories burned over the walk. The speed term is
// floor-divided by height, not divided.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingKcalPerMin*w.Weight +
		FloorDiv(speed*speed, w.Height)*walkingSpeedHeightMul*w.Weight) *
		MinInH * w.Duration
}

// Info summarises the walk.
func (w SportsWalking) Info() InfoMessage { return info(w, w.Duration) }

// Swimming is a pool session measured in strokes and laps.
type Swimming struct {
	training
	LengthPool float64
	CountPool  int
}

// NewSwimming constructs a Swimming workout.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		training:   training{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (Swimming) Name() string { return "Swimming" }

func (s Swimming) Distance() float64 { return s.distance(LenStroke) }

// MeanSpeed is derived from pool laps rather than strokes.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

// SpentCalories returns kilocalories burned over the session.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMul * s.Weight
}

// Info summarises the session.
func (s Swimming) Info() InfoMessage { return info(s, s.Duration) }

// FloorDiv divides a by b rounding toward negative infinity. The quotient is
// derived from math.Mod so exact multiples are never rounded down. A zero
// divisor yields NaN.
func FloorDiv(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1.0
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1.0
	}
	return floor
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunningStatistics(t *testing.T) {
	run := NewRunning(15000, 1, 75)

	require.InDelta(t, 9.75, run.Distance(), 1e-9)
	require.InDelta(t, 9.75, run.MeanSpeed(), 1e-9)
	require.InDelta(t, 699.75, run.SpentCalories(), 1e-9)
}

func TestSwimmingStatistics(t *testing.T) {
	swim := NewSwimming(720, 1, 80, 25, 40)

	require.InDelta(t, 0.9936, swim.Distance(), 1e-9)
	require.InDelta(t, 1.0, swim.MeanSpeed(), 1e-9)
	require.InDelta(t, 336.0, swim.SpentCalories(), 1e-9)
}

func TestSportsWalkingUsesFloorDivision(t *testing.T) {
	walk := NewSportsWalking(9000, 1, 75, 180)

	require.InDelta(t, 5.85, walk.Distance(), 1e-9)
	require.InDelta(t, 5.85, walk.MeanSpeed(), 1e-9)
	// 5.85^2 = 34.2225 floors to 0 against 180 cm, leaving only the weight term.
	require.InDelta(t, 157.5, walk.SpentCalories(), 1e-9)

	plain := (0.035*75 + 34.2225/180*0.029*75) * 60
	require.Greater(t, plain-walk.SpentCalories(), 1.0)
}

func TestSportsWalkingHeightTermKicksIn(t *testing.T) {
	// 30000 steps in 1h is 19.5 km/h; 380.25 // 180 = 2.
	walk := NewSportsWalking(30000, 1, 70, 180)

	want := (0.035*70 + 2*0.029*70) * 60
	require.InDelta(t, want, walk.SpentCalories(), 1e-9)
}

func TestDurationScalesSpeed(t *testing.T) {
	run := NewRunning(15000, 0.5, 75)

	require.InDelta(t, 9.75, run.Distance(), 1e-9)
	require.InDelta(t, 19.5, run.MeanSpeed(), 1e-9)

	swim := NewSwimming(720, 2, 80, 25, 40)
	require.InDelta(t, 0.5, swim.MeanSpeed(), 1e-9)
}

func TestInfoIsIdempotent(t *testing.T) {
	workouts := []Training{
		NewRunning(15000, 1, 75),
		NewSportsWalking(9000, 1, 75, 180),
		NewSwimming(720, 1, 80, 25, 40),
	}
	for _, w := range workouts {
		first := w.Info()
		second := w.Info()
		require.Equal(t, first, second, w.Name())
	}
}

func TestInfoCarriesDisplayName(t *testing.T) {
	require.Equal(t, "Running", NewRunning(1, 1, 1).Info().TrainingType)
	require.Equal(t, "SportsWalking", NewSportsWalking(1, 1, 1, 1).Info().TrainingType)
	require.Equal(t, "Swimming", NewSwimming(1, 1, 1, 1, 1).Info().TrainingType)
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{34.2225, 180, 0},
		{380.25, 180, 2},
		{-0.5, 180, -1},
		{1, 0.1, 9},
		{6, 3, 2},
	}
	for _, tc := range cases {
		got := FloorDiv(tc.a, tc.b)
		if got != tc.want {
			t.Fatalf("FloorDiv(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}

	require.True(t, math.IsNaN(FloorDiv(1, 0)))
}

package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"example.com/workout/internal/events"
	"example.com/workout/internal/observability"
)

func fixedService() *Service {
	now := time.Date(2025, time.October, 27, 20, 0, 0, 0, time.FixedZone("CET", 3600))
	return NewService(
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string { return "summary-1" }),
	)
}

func TestSummarizeRendersMessage(t *testing.T) {
	svc := fixedService()

	summary, err := svc.Summarize(context.Background(), events.WorkoutPackage{WorkoutType: "RUN", Data: []float64{15000, 1, 75}})
	require.NoError(t, err)

	require.Equal(t, "summary-1", summary.ID)
	require.Equal(t, "RUN", summary.WorkoutType)
	require.Equal(t, "Running", summary.Info.TrainingType)
	require.Equal(t, time.UTC, summary.ComputedAt.Location())
	require.Equal(t, summary.Info.Message(), summary.Message)
	require.Contains(t, summary.Message, "Calories burned: 699.750.")
}

func TestSummarizeRecordsMetrics(t *testing.T) {
	svc := NewService()
	before := testutil.ToFloat64(observability.SummariesComputed("SWM"))
	rejectedBefore := testutil.ToFloat64(observability.PackagesRejected("unknown"))

	_, err := svc.Summarize(context.Background(), events.WorkoutPackage{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}})
	require.NoError(t, err)
	_, err = svc.Summarize(context.Background(), events.WorkoutPackage{WorkoutType: "XYZ", Data: []float64{1, 2, 3}})
	require.ErrorIs(t, err, ErrInvalidInputData)

	require.Equal(t, before+1, testutil.ToFloat64(observability.SummariesComputed("SWM")))

	var metric dto.Metric
	require.NoError(t, observability.PackagesRejected("unknown").Write(&metric))
	require.Equal(t, rejectedBefore+1, metric.GetCounter().GetValue())
}

func TestSummarizeHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService().Summarize(ctx, events.WorkoutPackage{WorkoutType: "RUN", Data: []float64{15000, 1, 75}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarizeBatchKeepsOrder(t *testing.T) {
	svc := fixedService()

	summaries, err := svc.SummarizeBatch(context.Background(), []events.WorkoutPackage{
		{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
	})
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	require.Equal(t, "Swimming", summaries[0].Info.TrainingType)
	require.Equal(t, "Running", summaries[1].Info.TrainingType)
	require.Equal(t, "SportsWalking", summaries[2].Info.TrainingType)
}

func TestSummarizeBatchReportsFailingIndex(t *testing.T) {
	svc := fixedService()

	_, err := svc.SummarizeBatch(context.Background(), []events.WorkoutPackage{
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "RUN", Data: []float64{1, 2}},
	})
	require.ErrorIs(t, err, ErrInvalidInputData)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	require.Equal(t, 1, inputErr.Index)
}

func TestSummarizeRejectsOverflowingStatistics(t *testing.T) {
	svc := fixedService()
	rejectedBefore := testutil.ToFloat64(observability.PackagesRejected("RUN"))

	cases := []events.WorkoutPackage{
		{WorkoutType: "RUN", Data: []float64{15000, 1e-320, 75}},
		{WorkoutType: "SWM", Data: []float64{720, 1, 1e308, 1e308, 40}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 1e308, 180}},
	}
	for _, pkg := range cases {
		summary, err := svc.Summarize(context.Background(), pkg)
		require.ErrorIs(t, err, ErrInvalidInputData, pkg.WorkoutType)
		require.Nil(t, summary)
	}
	require.Equal(t, rejectedBefore+1, testutil.ToFloat64(observability.PackagesRejected("RUN")))
}

func TestSummarizeBatchCountsOnlyCompletedBatches(t *testing.T) {
	svc := fixedService()
	before := testutil.ToFloat64(observability.SummariesComputed("WLK"))

	_, err := svc.SummarizeBatch(context.Background(), []events.WorkoutPackage{
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75}},
	})
	require.ErrorIs(t, err, ErrInvalidInputData)
	require.Equal(t, before, testutil.ToFloat64(observability.SummariesComputed("WLK")))

	_, err = svc.SummarizeBatch(context.Background(), []events.WorkoutPackage{
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
		{WorkoutType: "WLK", Data: []float64{6000, 0.5, 60, 170}},
	})
	require.NoError(t, err)
	require.Equal(t, before+2, testutil.ToFloat64(observability.SummariesComputed("WLK")))
}

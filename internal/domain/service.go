package domain

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"example.com/workout/internal/events"
	"example.com/workout/internal/observability"
)

// Summary is a computed workout summary ready to be returned or published.
type Summary struct {
	ID          string
	WorkoutType string
	Info        InfoMessage
	Message     string
	ComputedAt  time.Time
}

// InputError reports which package of a batch failed validation.
type InputError struct {
	Index int
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("package %d: %v", e.Index, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp summaries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides how summary IDs are generated.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// Service orchestrates dispatch, calculation and rendering of workout packages.
type Service struct {
	now   func() time.Time
	newID func() string
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize validates the package, computes its statistics and renders the summary line.
func (s *Service) Summarize(ctx context.Context, pkg events.WorkoutPackage) (*Summary, error) {
	summary, err := s.summarize(ctx, pkg)
	if err != nil {
		return nil, err
	}
	observability.RecordSummaryComputed(summary.WorkoutType, summary.ComputedAt)
	return &summary, nil
}

// SummarizeBatch summarises packages in order and stops at the first invalid one.
// Computed summaries are only counted once the whole batch succeeds.
func (s *Service) SummarizeBatch(ctx context.Context, pkgs []events.WorkoutPackage) ([]Summary, error) {
	out := make([]Summary, 0, len(pkgs))
	for i, pkg := range pkgs {
		summary, err := s.summarize(ctx, pkg)
		if err != nil {
			return nil, &InputError{Index: i, Err: err}
		}
		out = append(out, summary)
	}
	for _, summary := range out {
		observability.RecordSummaryComputed(summary.WorkoutType, summary.ComputedAt)
	}
	return out, nil
}

func (s *Service) summarize(ctx context.Context, pkg events.WorkoutPackage) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	var info InfoMessage
	training, err := ReadPackage(pkg.WorkoutType, pkg.Data)
	if err == nil {
		info = training.Info()
		err = checkFinite(info)
	}
	if err != nil {
		observability.RecordPackageRejected(metricLabel(pkg.WorkoutType))
		return Summary{}, err
	}

	return Summary{
		ID:          s.newID(),
		WorkoutType: pkg.WorkoutType,
		Info:        info,
		Message:     info.Message(),
		ComputedAt:  s.now().UTC(),
	}, nil
}

// checkFinite rejects inputs that are individually valid but overflow a statistic.
func checkFinite(info InfoMessage) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"duration", info.Duration},
		{"distance", info.Distance},
		{"speed", info.Speed},
		{"calories", info.Calories},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s %s is not a finite number", ErrInvalidInputData, info.TrainingType, f.name)
		}
	}
	return nil
}

// metricLabel keeps label cardinality bounded to the registered codes.
func metricLabel(code string) string {
	if _, ok := registry[code]; ok {
		return code
	}
	return "unknown"
}

// Package domain defines workout variants, the package dispatcher and the summary service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Package is one raw input tuple: a workout code and its positional readings.
type Package struct {
	Code string
	Args []float64
}

// Result is the outcome of one package in a batch.
type Result struct {
	Index   int
	Package Package
	Summary Summary
	Err     error
}

// Recorder receives computation events, typically for metrics.
type Recorder interface {
	SummaryComputed(trainingType string)
	ComputeFailed(kind string)
	BatchCompleted(size, failed int)
}

type nopRecorder struct{}

func (nopRecorder) SummaryComputed(string) {}
func (nopRecorder) ComputeFailed(string) {}
func (nopRecorder) BatchCompleted(int, int) {}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithLogger overrides the logger used to report failed packages.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRecorder attaches a Recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithConcurrency bounds how many packages of a batch are computed at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// Service computes workout summaries.
type Service struct {
	logger      *log.Logger
	recorder    Recorder
	concurrency int
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger:      log.New(log.Writer(), "[workouts] ", log.LstdFlags),
		recorder:    nopRecorder{},
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compute builds the workout described by pkg and summarizes it.
func (s *Service) Compute(ctx context.Context, pkg Package) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	workout, err := Build(pkg.Code, pkg.Args)
	if err != nil {
		s.recorder.ComputeFailed(ErrorKind(err))
		return Summary{}, err
	}

	summary := Summarize(workout)
	s.recorder.SummaryComputed(summary.TrainingType)
	return summary, nil
}

// ComputeBatch computes every package and returns results in input order. A failed package
// never prevents the others from being computed; the returned error combines every failure.
func (s *Service) ComputeBatch(ctx context.Context, packages []Package) ([]Result, error) {
	runID := uuid.NewString()
	results := make([]Result, len(packages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, pkg := range packages {
		g.Go(func() error {
			summary, err := s.Compute(gctx, pkg)
			results[i] = Result{Index: i, Package: pkg, Summary: summary, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	var combined error
	failed := 0
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		failed++
		s.logger.Printf("batch %s: package %d (%s) failed: %v", runID, res.Index, res.Package.Code, res.Err)
		combined = multierr.Append(combined, fmt.Errorf("package %d (%s): %w", res.Index, res.Package.Code, res.Err))
	}
	s.recorder.BatchCompleted(len(packages), failed)

	return results, combined
}

// ErrorKind classifies err into a short, stable label.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownWorkoutType):
		return "unknown_workout_type"
	case errors.Is(err, ErrUnimplementedFormula):
		return "unimplemented_formula"
	case errors.Is(err, ErrArgumentCount), errors.Is(err, ErrArgumentType):
		return "invalid_arguments"
	case errors.Is(err, ErrDivisionByZero):
		return "arithmetic_error"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}

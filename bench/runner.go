package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReps is the number of timed repetitions per case.
const DefaultReps = 5

// Sample is one measured case.
type Sample struct {
	ID     string // unique per sample
	RunID  string // shared by every sample of one Runner
	Seq    int    // insertion order within the Store
	Suite  string
	Case   string
	Size   int
	Reps   int
	Median time.Duration

	// Storage counters, filled by the growth suite.
	Reallocations int
	Copies        int
	Bytes         uint64
}

// Runner measures cases and records them.
type Runner struct {
	logger *zap.Logger
	store  *Store
	reps   int
	runID  string
}

// Option configures a Runner.
type Option func(*Runner)

// WithReps sets the number of timed repetitions per case. Values below one
// are raised to one.
func WithReps(n int) Option {
	return func(r *Runner) { r.reps = max(1, n) }
}

// WithStore makes the Runner record into st instead of a private Store.
func WithStore(st *Store) Option {
	return func(r *Runner) { r.store = st }
}

// NewRunner returns a Runner logging to logger (zap.NewNop when nil).
func NewRunner(logger *zap.Logger, opts ...Option) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{
		reps:  DefaultReps,
		runID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.store == nil {
		st, err := NewStore()
		if err != nil {
			return nil, err
		}
		r.store = st
	}
	r.logger = logger.With(zap.String("run", r.runID))

	return r, nil
}

// RunID identifies every sample recorded by this Runner.
func (r *Runner) RunID() string { return r.runID }

// Store returns the Store samples are recorded into.
func (r *Runner) Store() *Store { return r.store }

// Logger returns the Runner's logger (already tagged with the run id).
func (r *Runner) Logger() *zap.Logger { return r.logger }

// Measure runs fn reps times, records the median and returns the sample.
// setup, when non-nil, runs untimed before every repetition.
func (r *Runner) Measure(suite, name string, size int, setup, fn func()) (Sample, error) {
	s, err := r.measure(suite, name, size, setup, fn)
	if err != nil {
		return Sample{}, err
	}

	return s, r.record(s)
}

// measure runs the repetitions and builds the sample without recording it.
func (r *Runner) measure(suite, name string, size int, setup, fn func()) (Sample, error) {
	durations := make([]time.Duration, r.reps)
	for i := range durations {
		if setup != nil {
			setup()
		}
		start := time.Now()
		fn()
		durations[i] = time.Since(start)
	}
	mid, err := MedianIndex(durations)
	if err != nil {
		return Sample{}, err
	}

	return Sample{
		ID:     uuid.NewString(),
		RunID:  r.runID,
		Suite:  suite,
		Case:   name,
		Size:   size,
		Reps:   r.reps,
		Median: durations[mid],
	}, nil
}

// record stores s and logs it.
func (r *Runner) record(s Sample) error {
	if err := r.store.Insert(s); err != nil {
		r.logger.Error("store sample", zap.String("suite", s.Suite), zap.String("case", s.Case), zap.Error(err))
		return fmt.Errorf("bench: record: %w", err)
	}

	fields := []zap.Field{
		zap.String("suite", s.Suite),
		zap.String("case", s.Case),
		zap.Int("size", s.Size),
		zap.String("elements", humanize.Comma(int64(s.Size))),
		zap.Duration("median", s.Median),
		zap.Int("reps", s.Reps),
	}
	if s.Bytes > 0 {
		fields = append(fields,
			zap.Int("reallocations", s.Reallocations),
			zap.Int("copies", s.Copies),
			zap.String("bytes", humanize.IBytes(s.Bytes)),
		)
	}
	r.logger.Info("sample", fields...)

	return nil
}

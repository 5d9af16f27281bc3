// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Runner evaluates jobs concurrently.
type Runner struct {
	logger      *Logger
	concurrency int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for per-job events. nil keeps the no-op logger.
func WithLogger(l *Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithConcurrency bounds the number of jobs evaluated at once.
// n <= 0 means runtime.GOMAXPROCS(0).
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) { r.concurrency = n }
}

// NewRunner returns a Runner with a no-op logger and GOMAXPROCS concurrency.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: NoopLogger()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// limit resolves the effective concurrency.
func (r *Runner) limit() int {
	if r.concurrency <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return r.concurrency
}

// Run evaluates every job and returns the results in input order.
//
// Per-job failures are stored in Result.Err and do not stop other jobs. The
// returned error is non-nil only when ctx is cancelled; jobs that had not
// started by then carry ctx.Err() in their Result.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit())

	r.logger.Debug("batch run starting", slog.Int("jobs", len(jobs)), slog.Int("concurrency", r.limit()))
	started := time.Now()

	for i := range jobs {
		i := i
		job := jobs[i]
		results[i] = Result{Name: job.Name, Op: job.Op}
		if err := gctx.Err(); err != nil {
			results[i].Err = jobErrorf(job, err)
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = jobErrorf(job, err)
				return err
			}
			log := r.logger.WithJob(job)
			v, err := Evaluate(job)
			if err != nil {
				log.Warn("job failed", slog.Any("error", err))
				results[i].Err = err
				return nil
			}
			log.Debug("job done", slog.String("value", FormatValue(v)))
			results[i].Value = v
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	r.logger.Info("batch run finished",
		slog.Int("jobs", len(jobs)),
		slog.Int("failed", countFailed(results)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return results, err
}

// RunFile evaluates all jobs of f, using f.Concurrency when the runner has no
// explicit limit.
func (r *Runner) RunFile(ctx context.Context, f *File) ([]Result, error) {
	if r.concurrency <= 0 && f.Concurrency > 0 {
		cp := *r
		cp.concurrency = f.Concurrency
		return cp.Run(ctx, f.Jobs)
	}

	return r.Run(ctx, f.Jobs)
}

// countFailed returns the number of results carrying an error.
func countFailed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}

	return n
}

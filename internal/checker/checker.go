// Package checker loads tsconfig files and evaluates them with the rule engine.
package checker

//go:generate mockgen -source=checker.go -destination=checker_mock.go -package=checker

import (
	"context"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hako/durafmt"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/internal/tsconfig"
	"github.com/smykla-skalski/tsconfcheck/pkg/logger"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

const elapsedUnits = 2

// Loader loads a tsconfig and its extends chain.
type Loader interface {
	Load(ctx context.Context, path string) (*tsconfig.Result, error)
}

// Evaluator evaluates a compiler options snapshot.
type Evaluator interface {
	Evaluate(snap *options.Snapshot) []rules.Diagnostic
}

// FileResult is the outcome of checking one path.
type FileResult struct {
	// Path is the path as given by the caller.
	Path string `json:"path"`

	// Resolved is the tsconfig file actually loaded.
	Resolved string `json:"resolved,omitempty"`

	// Chain lists the merged files, bases first.
	Chain []string `json:"chain,omitempty"`

	// Diagnostics found in the merged options.
	Diagnostics []rules.Diagnostic `json:"diagnostics"`

	// Err is set when the file could not be loaded.
	Err error `json:"-"`
}

// Failed reports whether the file could not be loaded.
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// Count returns the number of diagnostics at severity.
func (r FileResult) Count(severity rules.Severity) int {
	n := 0

	for _, d := range r.Diagnostics {
		if d.Severity == severity {
			n++
		}
	}

	return n
}

// Checker checks tsconfig files concurrently.
type Checker struct {
	loader      Loader
	evaluator   Evaluator
	logger      logger.Logger
	concurrency int
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger for the checker.
func WithLogger(log logger.Logger) Option {
	return func(c *Checker) {
		c.logger = log
	}
}

// WithConcurrency bounds the number of files checked at once.
// Values below one use GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		c.concurrency = n
	}
}

// New creates a new Checker.
func New(loader Loader, evaluator Evaluator, opts ...Option) *Checker {
	c := &Checker{
		loader:    loader,
		evaluator: evaluator,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logger.NewNoOpLogger()
	}

	if c.concurrency < 1 {
		c.concurrency = runtime.GOMAXPROCS(0)
	}

	return c
}

// Check loads and evaluates every path. Results are returned in the order of
// paths. A failure to load one file never stops the others; once ctx is done
// the remaining files report the context error.
func (c *Checker) Check(ctx context.Context, paths []string) []FileResult {
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i := range paths {
		g.Go(func() error {
			results[i] = c.checkFile(gctx, paths[i])

			return nil
		})
	}

	// Workers never fail; errors are carried in the results.
	_ = g.Wait()

	return results
}

func (c *Checker) checkFile(ctx context.Context, path string) FileResult {
	result := FileResult{
		Path:        path,
		Diagnostics: []rules.Diagnostic{},
	}

	if err := ctx.Err(); err != nil {
		result.Err = errors.Wrapf(err, "checking %s", path)

		return result
	}

	start := time.Now()

	loaded, err := c.loader.Load(ctx, path)
	if err != nil {
		c.logger.Debug("load failed", "path", path, "error", err)
		result.Err = err

		return result
	}

	c.logger.Debug("loaded",
		"path", loaded.Path,
		"files", len(loaded.Chain),
	)

	result.Resolved = loaded.Path
	result.Chain = loaded.Chain
	result.Diagnostics = c.evaluator.Evaluate(loaded.Snapshot)

	c.logger.Debug("evaluated",
		"path", loaded.Path,
		"diagnostics", len(result.Diagnostics),
		"elapsed", durafmt.Parse(time.Since(start)).LimitFirstN(elapsedUnits).String(),
	)

	return result
}

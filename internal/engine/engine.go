// Package engine runs the parse pipeline: decode and extract a payload,
// optionally validate the record, and keep the result in a store.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/ottodish/internal/domain"
	"github.com/hammamikhairi/ottodish/internal/logger"
	"github.com/hammamikhairi/ottodish/internal/validate"
)

// Option configures the engine.
type Option func(*Engine)

// WithValidation makes every processed record go through the schema
// validator. Findings are attached to the result, not returned as errors.
func WithValidation(on bool) Option {
	return func(e *Engine) {
		e.validate = on
	}
}

// WithClock overrides the time source used for Result.ParsedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// DigestChecker is an optional interface that ResultStore implementations
// can satisfy to let the engine skip payloads it has already parsed.
type DigestChecker interface {
	Unchanged(source, digest string) bool
}

// Engine wires an extractor to a result store. It depends only on
// interfaces and is safe for concurrent use when its dependencies are.
type Engine struct {
	extractor domain.Extractor
	store     domain.ResultStore
	log       *logger.Logger
	validate  bool
	now       func() time.Time
}

// New creates an engine. store may be nil, in which case results are
// returned but not kept.
func New(extractor domain.Extractor, store domain.ResultStore, log *logger.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	e := &Engine{
		extractor: extractor,
		store:     store,
		log:       log.Named("engine"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process extracts one payload. The only error is domain.ErrNotText
// (wrapped with the source) or a store failure.
func (e *Engine) Process(source string, payload []byte) (*domain.Result, error) {
	analysis, err := e.extractor.Extract(payload)
	if err != nil {
		e.log.Warn("%s: %v", source, err)
		return nil, fmt.Errorf("engine: %s: %w", source, err)
	}

	res := &domain.Result{
		Source:   source,
		Digest:   Digest(payload),
		Analysis: analysis,
		ParsedAt: e.now(),
	}
	if e.validate {
		res.Problems = validate.Problems(analysis)
		if len(res.Problems) > 0 {
			e.log.Info("%s: %d validation problem(s)", source, len(res.Problems))
		}
	}

	if e.store != nil {
		if err := e.store.Save(res); err != nil {
			return nil, fmt.Errorf("engine: saving %s: %w", source, err)
		}
	}

	e.log.Debug("%s: parsed %q (%d ingredients, %d steps)", source,
		analysis.Name, len(analysis.Ingredients), len(analysis.CookingProcess.Steps))
	return res, nil
}

// ProcessIfChanged is Process, except that a payload whose digest matches
// the stored result for source is skipped. changed is false when skipped.
func (e *Engine) ProcessIfChanged(source string, payload []byte) (res *domain.Result, changed bool, err error) {
	if dc, ok := e.store.(DigestChecker); ok && dc.Unchanged(source, Digest(payload)) {
		e.log.Debug("%s: unchanged, skipping", source)
		return nil, false, nil
	}
	res, err = e.Process(source, payload)
	return res, err == nil, err
}

// ProcessReader reads r to the end and processes it.
func (e *Engine) ProcessReader(source string, r io.Reader) (*domain.Result, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("engine: reading %s: %w", source, err)
	}
	return e.Process(source, payload)
}

// ProcessFile reads and processes a file. The path is the result source.
func (e *Engine) ProcessFile(path string) (*domain.Result, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return e.Process(path, payload)
}

// Forget drops the stored result for source, if any.
func (e *Engine) Forget(source string) {
	if e.store == nil {
		return
	}
	if err := e.store.Delete(source); err != nil && !errors.Is(err, domain.ErrNotFound) {
		e.log.Error("forget %s: %v", source, err)
		return
	}
	e.log.Debug("%s: forgotten", source)
}

// Batch processes files concurrently with at most workers in flight.
// A failing file does not stop the others: the successful results are
// returned in path order together with the joined per-file errors.
func (e *Engine) Batch(ctx context.Context, paths []string, workers int) ([]*domain.Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]*domain.Result, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = fmt.Errorf("engine: %s: %w", path, err)
				return nil
			}
			results[i], errs[i] = e.ProcessFile(path)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*domain.Result, 0, len(paths))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	e.log.Info("batch: %d/%d file(s) parsed with %d worker(s)", len(out), len(paths), workers)
	return out, errors.Join(errs...)
}

// Expand resolves glob patterns into a sorted, de-duplicated file list.
// A pattern matching nothing is an error.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("engine: pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("engine: pattern %q: no matching files", p)
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err != nil || info.IsDir() {
				continue
			}
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// Package fundamentos runs the introductory programming lessons on an embedded
// scripting engine and checks their output against the lesson catalog.
package fundamentos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/robbyt/go-fundamentos/engines/risor"
	"github.com/robbyt/go-fundamentos/engines/starlark"
	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/robbyt/go-fundamentos/internal/helpers"
	"github.com/robbyt/go-fundamentos/lessons"
	"github.com/robbyt/go-fundamentos/platform"
	"github.com/robbyt/go-fundamentos/platform/script/loader"
	"github.com/robbyt/go-fundamentos/platform/transcript"
)

// ErrOutputMismatch is returned by Verify when a transcript differs from the expected lines.
var ErrOutputMismatch = errors.New("lesson output does not match the expected output")

// Result is the outcome of one lesson run.
type Result struct {
	Lesson      lessons.Lesson
	Engine      types.Type
	RunID       uuid.UUID
	ScriptExeID string
	Transcript  *transcript.Transcript
	ExecTime    string
}

func (r *Result) String() string {
	return fmt.Sprintf("Result{Lesson: %s, Engine: %s, RunID: %s, Lines: %d, ExecTime: %s}",
		r.Lesson, r.Engine, r.RunID, r.Transcript.Len(), r.ExecTime)
}

type evaluatorFactory func(slog.Handler, types.Type, loader.Loader) (platform.Evaluator, error)

// Runner compiles and runs lessons from a catalog on one engine.
type Runner struct {
	engine       types.Type
	catalog      *lessons.Catalog
	logHandler   slog.Handler
	logger       *slog.Logger
	newEvaluator evaluatorFactory
}

// New creates a Runner. Without options it runs the embedded catalog on Starlark.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	if err := r.applyDefaults(); err != nil {
		return nil, err
	}
	r.logHandler, r.logger = helpers.SetupLogger(r.logHandler, "fundamentos", "Runner")
	return r, nil
}

func (r *Runner) applyDefaults() error {
	if r.engine == "" {
		r.engine = types.Starlark
	}
	if r.catalog == nil {
		c, err := lessons.Default()
		if err != nil {
			return err
		}
		r.catalog = c
	}
	if r.newEvaluator == nil {
		r.newEvaluator = engineEvaluator
	}
	return nil
}

// engineEvaluator compiles the script from ldr on the given engine.
func engineEvaluator(handler slog.Handler, engine types.Type, ldr loader.Loader) (platform.Evaluator, error) {
	switch engine {
	case types.Starlark:
		e, err := starlark.FromLoader(handler, ldr)
		if err != nil {
			return nil, err
		}
		return e, nil
	case types.Risor:
		e, err := risor.FromLoader(handler, ldr)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownType, engine)
	}
}

func (r *Runner) Engine() types.Type {
	return r.engine
}

func (r *Runner) Catalog() *lessons.Catalog {
	return r.catalog
}

// Evaluator compiles the lesson named by ref. The returned evaluator can be run
// any number of times.
func (r *Runner) Evaluator(ref string) (*LessonEvaluator, error) {
	l, err := r.catalog.Get(ref)
	if err != nil {
		return nil, err
	}

	ldr, err := r.catalog.Loader(l, r.engine)
	if err != nil {
		return nil, fmt.Errorf("lesson %s: %w", l, err)
	}

	eval, err := r.newEvaluator(r.logHandler, r.engine, ldr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile lesson %s for %s: %w", l, r.engine, err)
	}
	r.logger.Debug("lesson compiled", "lesson", l.String(), "engine", r.engine)

	return NewLessonEvaluator(eval, l, r.engine), nil
}

// Run compiles and evaluates one lesson.
func (r *Runner) Run(ctx context.Context, ref string) (*Result, error) {
	eval, err := r.Evaluator(ref)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, eval)
}

func (r *Runner) run(ctx context.Context, eval *LessonEvaluator) (*Result, error) {
	runID := uuid.New()
	logger := r.logger.With("lesson", eval.Lesson().String(), "engine", r.engine, "runID", runID)

	resp, err := eval.Eval(ctx)
	if err != nil {
		logger.WarnContext(ctx, "lesson failed", "error", err)
		return nil, fmt.Errorf("lesson %s failed on %s: %w", eval.Lesson(), r.engine, err)
	}

	tr := resp.Transcript()
	if tr == nil {
		tr = transcript.New()
	}

	result := &Result{
		Lesson:      eval.Lesson(),
		Engine:      r.engine,
		RunID:       runID,
		ScriptExeID: resp.GetScriptExeID(),
		Transcript:  tr,
		ExecTime:    resp.GetExecTime(),
	}
	logger.DebugContext(ctx, "lesson complete", "lines", tr.Len(), "execTime", result.ExecTime)
	return result, nil
}

// RunAll runs every lesson in catalog order. It stops at the first failure and
// returns the results collected so far.
func (r *Runner) RunAll(ctx context.Context) ([]*Result, error) {
	var results []*Result
	err := r.RunEach(ctx, func(res *Result) error {
		results = append(results, res)
		return nil
	})
	return results, err
}

// RunEach runs every lesson in catalog order and hands each result to fn as
// soon as its lesson finishes. It stops at the first error from a lesson or fn.
func (r *Runner) RunEach(ctx context.Context, fn func(*Result) error) error {
	for _, l := range r.catalog.List() {
		res, err := r.Run(ctx, l.String())
		if err != nil {
			return err
		}
		if err := fn(res); err != nil {
			return err
		}
	}
	return nil
}

// Verify runs one lesson and compares its transcript against the catalog. A
// mismatch returns the result together with an error wrapping ErrOutputMismatch.
func (r *Runner) Verify(ctx context.Context, ref string) (*Result, error) {
	res, err := r.Run(ctx, ref)
	if err != nil {
		return nil, err
	}

	if diff := res.Transcript.Diff(res.Lesson.Expected); diff != "" {
		return res, fmt.Errorf("%w: lesson %s on %s (-want +got):\n%s",
			ErrOutputMismatch, res.Lesson, r.engine, diff)
	}
	return res, nil
}

// Source returns the lesson's script for the runner's engine.
func (r *Runner) Source(ref string) (lessons.Lesson, string, error) {
	l, err := r.catalog.Get(ref)
	if err != nil {
		return lessons.Lesson{}, "", err
	}
	src, err := r.catalog.Source(l, r.engine)
	if err != nil {
		return lessons.Lesson{}, "", err
	}
	return l, src, nil
}

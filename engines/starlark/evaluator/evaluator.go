package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-fundamentos/engines/starlark/internal"
	"github.com/robbyt/go-fundamentos/internal/helpers"
	"github.com/robbyt/go-fundamentos/platform"
	"github.com/robbyt/go-fundamentos/platform/script"
	"github.com/robbyt/go-fundamentos/platform/transcript"
	starlarkLib "go.starlark.net/starlark"
)

// resultGlobal is the optional global a script can bind to expose a final value.
const resultGlobal = "result"

// ErrInvalidBytecode is returned when the executable content does not hold a Starlark program.
var ErrInvalidBytecode = errors.New("invalid starlark bytecode")

// Evaluator runs compiled Starlark lessons.
type Evaluator struct {
	execUnit *script.ExecutableUnit
	logger   *slog.Logger
}

// New creates a new Evaluator object
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	_, logger := helpers.SetupLogger(handler, "starlark", "Evaluator")
	return &Evaluator{
		execUnit: execUnit,
		logger:   logger,
	}
}

func (be *Evaluator) String() string {
	return "starlark.Evaluator"
}

// exec runs the program on a new thread whose print builtin writes to a fresh transcript.
func (be *Evaluator) exec(
	ctx context.Context,
	prog *starlarkLib.Program,
	exeID string,
) (*execResult, error) {
	logger := be.logger.WithGroup("exec")
	tr := transcript.New()

	thread := &starlarkLib.Thread{
		Name: exeID,
		Print: func(_ *starlarkLib.Thread, msg string) {
			logger.DebugContext(ctx, "print", "line", msg)
			tr.Println(msg)
		},
	}

	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	startTime := time.Now()
	globals, err := prog.Init(thread, internal.Universe())
	execTime := time.Since(startTime)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("starlark execution cancelled: %w", ctxErr)
		}
		return nil, fmt.Errorf("starlark execution error: %w", err)
	}

	return newEvalResult(globals[resultGlobal], tr, execTime, exeID), nil
}

// Eval runs the compiled lesson and returns its transcript.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	prog, ok := be.execUnit.GetContent().GetByteCode().(*starlarkLib.Program)
	if !ok || prog == nil {
		return nil, fmt.Errorf(
			"%w: expected *starlark.Program, got %T",
			ErrInvalidBytecode,
			be.execUnit.GetContent().GetByteCode(),
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("starlark execution cancelled: %w", err)
	}

	result, err := be.exec(ctx, prog, exeID)
	if err != nil {
		logger.WarnContext(ctx, "exec failed", "error", err)
		return nil, fmt.Errorf("exec error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "result", result)

	return result, nil
}

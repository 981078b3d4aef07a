package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	"github.com/robbyt/go-fundamentos/engines/risor/internal"
	"github.com/robbyt/go-fundamentos/internal/helpers"
	"github.com/robbyt/go-fundamentos/platform"
	"github.com/robbyt/go-fundamentos/platform/script"
	"github.com/robbyt/go-fundamentos/platform/transcript"
)

var (
	// ErrInvalidBytecode is returned when the executable content does not hold Risor bytecode.
	ErrInvalidBytecode = errors.New("invalid risor bytecode")

	// ErrScriptReturned is returned when a script ends in an error or function value.
	ErrScriptReturned = errors.New("script returned an unusable value")
)

// Evaluator runs compiled Risor lessons.
type Evaluator struct {
	execUnit *script.ExecutableUnit
	logger   *slog.Logger
}

// New creates a new Evaluator object
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	_, logger := helpers.SetupLogger(handler, "risor", "Evaluator")
	return &Evaluator{
		execUnit: execUnit,
		logger:   logger,
	}
}

func (be *Evaluator) String() string {
	return "risor.Evaluator"
}

// exec runs the bytecode with print bound to a fresh transcript.
func (be *Evaluator) exec(
	ctx context.Context,
	bytecode *risorCompiler.Code,
	exeID string,
) (*execResult, error) {
	tr := transcript.New()

	startTime := time.Now()
	result, err := risorLib.EvalCode(ctx, bytecode, internal.EvalOptions(tr)...)
	execTime := time.Since(startTime)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("risor execution cancelled: %w", ctxErr)
		}
		return nil, fmt.Errorf("risor execution error: %w", err)
	}
	return newEvalResult(result, tr, execTime, exeID), nil
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

	bytecode, ok := be.execUnit.GetContent().GetByteCode().(*risorCompiler.Code)
	if !ok || bytecode == nil {
		return nil, fmt.Errorf(
			"%w: unable to type assert bytecode into *risorCompiler.Code for ID: %s",
			ErrInvalidBytecode,
			exeID,
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("risor execution cancelled: %w", err)
	}

	result, err := be.exec(ctx, bytecode, exeID)
	if err != nil {
		logger.WarnContext(ctx, "exec failed", "error", err)
		return nil, fmt.Errorf("exec error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "result", result)

	switch result.Object.Type() {
	case "error":
		return result, fmt.Errorf("%w: error %s", ErrScriptReturned, result.Inspect())
	case "function":
		return result, fmt.Errorf("%w: function %s", ErrScriptReturned, result.Inspect())
	}

	return result, nil
}

package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-fundamentos/engines/risor/compiler/internal/compile"
	"github.com/robbyt/go-fundamentos/platform/script"
)

// Compiler turns Risor lesson source into bytecode.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Risor compiler with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "risor.Compiler"
}

// Compile reads and closes scriptReader, then compiles its content.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	scriptBodyBytes, err := io.ReadAll(scriptReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if err := scriptReader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	return c.compile(scriptBodyBytes)
}

func (c *Compiler) compile(scriptBodyBytes []byte) (*Executable, error) {
	logger := c.logger.WithGroup("compile")
	if len(scriptBodyBytes) == 0 {
		return nil, ErrContentNil
	}
	scriptContent := string(scriptBodyBytes)

	trimmedScript := strings.TrimSpace(scriptContent)
	if trimmedScript == "" || commentOnly(trimmedScript) {
		logger.Warn("Script contains no statements")
		return nil, ErrNoInstructions
	}

	logger.Debug("Starting validation")
	bc, err := compile.Compile(&scriptContent)
	if err != nil {
		logger.Warn("Compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if bc == nil {
		logger.Error("Compilation returned nil bytecode")
		return nil, ErrBytecodeNil
	}

	instructionCount := bc.InstructionCount()
	logger.Debug("Compilation successful", "instructionCount", instructionCount)
	if instructionCount < 1 {
		return nil, ErrNoInstructions
	}

	exe := NewExecutable(scriptBodyBytes, bc)
	if exe == nil {
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Validation completed")
	return exe, nil
}

// commentOnly reports whether every non-blank line is a "//" or "#" comment.
func commentOnly(src string) bool {
	for line := range strings.SplitSeq(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return false
	}
	return true
}

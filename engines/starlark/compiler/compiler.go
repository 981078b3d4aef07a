package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-fundamentos/engines/starlark/compiler/internal/compile"
	"github.com/robbyt/go-fundamentos/platform/script"
)

// Compiler turns Starlark lesson source into a resolved *starlark.Program.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Starlark compiler with the provided options.
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
	return "starlark.Compiler"
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
		logger.Error("Compile called with empty script")
		return nil, ErrContentNil
	}

	if commentOnly(string(scriptBodyBytes)) {
		logger.Warn("Script contains only comments")
		return nil, ErrNoInstructions
	}

	logger.Debug("Starting validation")
	program, err := compile.Compile(scriptBodyBytes)
	if err != nil {
		logger.Warn("Compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if program == nil {
		logger.Error("Compilation returned nil program")
		return nil, ErrBytecodeNil
	}

	exe := NewExecutable(scriptBodyBytes, program)
	if exe == nil {
		logger.Warn("Failed to create Executable from program")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Validation completed")
	return exe, nil
}

// commentOnly reports whether every non-blank line is a "#" comment.
func commentOnly(src string) bool {
	for line := range strings.SplitSeq(src, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return false
		}
	}
	return true
}

package compile

import (
	"errors"
	"fmt"

	"github.com/robbyt/go-fundamentos/engines/starlark/internal"
	starlarkLib "go.starlark.net/starlark"
)

var (
	ErrCompileFailed = errors.New("failed to compile starlark script")
	ErrContentNil    = errors.New("starlark content is nil")
)

// Compile parses and resolves the script into a Starlark program. Names are
// resolved against the same universe the evaluator runs the program with.
func Compile(scriptBodyBytes []byte) (*starlarkLib.Program, error) {
	if scriptBodyBytes == nil {
		return nil, ErrContentNil
	}

	f, err := internal.FileOptions().Parse("", scriptBodyBytes, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	prog, err := starlarkLib.FileProgram(f, internal.Universe().Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return prog, nil
}

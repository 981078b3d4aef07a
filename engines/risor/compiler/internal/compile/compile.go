package compile

import (
	"context"
	"errors"
	"fmt"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"
)

var (
	ErrCompileFailed = errors.New("failed to compile risor script")
	ErrContentNil    = errors.New("risor content is nil")
)

// Compile parses and compiles the script content into bytecode, resolving names
// against Risor's default globals.
func Compile(scriptContent *string) (*risorCompiler.Code, error) {
	if scriptContent == nil {
		return nil, ErrContentNil
	}

	ast, err := risorParser.Parse(context.Background(), *scriptContent)
	if err != nil {
		errMsg := err.Error()
		var friendlyErr risorErrors.FriendlyError
		if errors.As(err, &friendlyErr) {
			errMsg = friendlyErr.FriendlyErrorMessage()
		}
		return nil, fmt.Errorf("%w: %s", ErrCompileFailed, errMsg)
	}

	cfg := risorLib.NewConfig()
	bc, err := risorCompiler.Compile(ast, risorCompiler.WithGlobalNames(cfg.GlobalNames()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return bc, nil
}

// Package starlark runs lessons written in Starlark, the Python dialect from
// https://github.com/google/starlark-go.
package starlark

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-fundamentos/engines/starlark/compiler"
	"github.com/robbyt/go-fundamentos/engines/starlark/evaluator"
	"github.com/robbyt/go-fundamentos/platform/script"
	"github.com/robbyt/go-fundamentos/platform/script/loader"
)

// NewCompiler creates a new Starlark compiler using the functional options pattern.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// FromLoader compiles the script from ldr and returns an evaluator ready to run it.
// The executable unit ID is the loader's source URL.
func FromLoader(logHandler slog.Handler, ldr loader.Loader) (*evaluator.Evaluator, error) {
	if ldr == nil {
		return nil, fmt.Errorf("loader is nil")
	}

	var opts []compiler.FunctionalOption
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}
	c, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Starlark compiler: %w", err)
	}

	execUnitID := ""
	if sourceURL := ldr.GetSourceURL(); sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	execUnit, err := script.NewExecutableUnit(logHandler, execUnitID, ldr, c)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit), nil
}

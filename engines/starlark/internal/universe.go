package internal

import (
	"maps"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Universe returns a copy of the Starlark predeclared names. The compiler and the
// evaluator must agree on this set, or compiled programs fail to resolve at run time.
func Universe() starlarkLib.StringDict {
	return maps.Clone(starlarkLib.Universe)
}

// FileOptions enables the dialect the lessons are written in: top-level if/for/while
// statements, while loops and reassignment of globals (e.g. "contador += 1").
func FileOptions() *syntax.FileOptions {
	return &syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}
}

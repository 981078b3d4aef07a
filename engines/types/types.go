// Package types names the script engines a lesson can be written for.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when an engine name does not match any supported engine.
var ErrUnknownType = errors.New("unknown engine type")

// Type identifies a script engine.
type Type string

const (
	// Starlark engine: https://github.com/google/starlark-go
	Starlark Type = "starlark"

	// Risor engine: https://github.com/risor-io/risor
	Risor Type = "risor"
)

// All returns every supported engine in a stable order.
func All() []Type {
	return []Type{Starlark, Risor}
}

// Parse converts an engine name into a Type. Matching ignores case and surrounding space.
func Parse(name string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(name))) {
	case Starlark:
		return Starlark, nil
	case Risor:
		return Risor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Extension returns the file extension used for scripts of this engine.
func (t Type) Extension() string {
	switch t {
	case Starlark:
		return ".star"
	case Risor:
		return ".risor"
	}
	return ""
}

func (t Type) String() string {
	return string(t)
}

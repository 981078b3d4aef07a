package internal

import (
	"context"
	"strings"

	risorLib "github.com/risor-io/risor"
	rObj "github.com/risor-io/risor/object"
	"github.com/robbyt/go-fundamentos/platform/transcript"
)

// PrintBuiltin returns a replacement for Risor's print builtin that appends one
// line to tr per call. Strings are written without quotes, any other value as
// its Inspect form, and arguments are separated by a single space.
func PrintBuiltin(tr *transcript.Transcript) *rObj.Builtin {
	return rObj.NewBuiltin("print", func(ctx context.Context, args ...rObj.Object) rObj.Object {
		tr.Println(FormatArgs(args...))
		return rObj.Nil
	})
}

// FormatArgs renders values the way print shows them.
func FormatArgs(args ...rObj.Object) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if s, ok := arg.(*rObj.String); ok {
			parts = append(parts, s.Value())
			continue
		}
		parts = append(parts, arg.Inspect())
	}
	return strings.Join(parts, " ")
}

// EvalOptions returns the Risor options for one run whose output goes to tr.
// print must be an override: plain globals are replaced by the default
// builtins when the config is initialized.
func EvalOptions(tr *transcript.Transcript) []risorLib.Option {
	return []risorLib.Option{
		risorLib.WithGlobalOverride("print", PrintBuiltin(tr)),
	}
}

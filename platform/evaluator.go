package platform

import (
	"context"

	"github.com/robbyt/go-fundamentos/platform/transcript"
)

// Evaluator runs a compiled lesson script.
type Evaluator interface {
	// Eval runs the pre-compiled script on a fresh interpreter state. Nothing
	// carries over between calls, so repeated calls yield identical transcripts.
	// Cancelling ctx aborts the script.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// EvaluatorResponse is the outcome of one Eval call.
type EvaluatorResponse interface {
	// Transcript returns every line the script printed, in order.
	Transcript() *transcript.Transcript

	// GetScriptExeID returns the ID of the executable unit that was run.
	GetScriptExeID() string

	// GetExecTime returns how long the script ran.
	GetExecTime() string

	// Inspect returns the engine's rendering of the script's final value.
	Inspect() string
}

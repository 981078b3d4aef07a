package evaluator

import (
	"fmt"
	"time"

	"github.com/robbyt/go-fundamentos/platform/transcript"
	starlarkLib "go.starlark.net/starlark"
)

// execResult is the outcome of one Starlark program run.
type execResult struct {
	value       starlarkLib.Value
	transcript  *transcript.Transcript
	execTime    time.Duration
	scriptExeID string
}

func newEvalResult(
	value starlarkLib.Value,
	tr *transcript.Transcript,
	execTime time.Duration,
	scriptExeID string,
) *execResult {
	if value == nil {
		value = starlarkLib.None
	}
	if tr == nil {
		tr = transcript.New()
	}
	return &execResult{
		value:       value,
		transcript:  tr,
		execTime:    execTime,
		scriptExeID: scriptExeID,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Lines: %d, Value: %s, ExecTime: %s, ScriptExeID: %s}",
		r.transcript.Len(), r.value, r.GetExecTime(), r.scriptExeID)
}

func (r *execResult) Transcript() *transcript.Transcript {
	return r.transcript
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}

// Inspect renders the value bound to the script's "result" global, or None.
func (r *execResult) Inspect() string {
	return r.value.String()
}

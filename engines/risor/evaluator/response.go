package evaluator

import (
	"fmt"
	"time"

	rObj "github.com/risor-io/risor/object"
	"github.com/robbyt/go-fundamentos/platform/transcript"
)

// execResult is the outcome of one Risor program run.
type execResult struct {
	rObj.Object
	transcript  *transcript.Transcript
	execTime    time.Duration
	scriptExeID string
}

func newEvalResult(
	obj rObj.Object,
	tr *transcript.Transcript,
	execTime time.Duration,
	scriptExeID string,
) *execResult {
	if obj == nil {
		obj = rObj.Nil
	}
	if tr == nil {
		tr = transcript.New()
	}
	return &execResult{
		Object:      obj,
		transcript:  tr,
		execTime:    execTime,
		scriptExeID: scriptExeID,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Lines: %d, Type: %s, ExecTime: %s, ScriptExeID: %s}",
		r.transcript.Len(), r.Object.Type(), r.GetExecTime(), r.scriptExeID)
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

// Inspect renders the value of the script's last expression.
func (r *execResult) Inspect() string {
	return r.Object.Inspect()
}

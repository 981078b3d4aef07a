package evaluator

import (
	"testing"
	"time"

	"github.com/robbyt/go-fundamentos/platform/transcript"
	"github.com/stretchr/testify/assert"
	starlarkLib "go.starlark.net/starlark"
)

func TestExecResult(t *testing.T) {
	t.Parallel()

	t.Run("defaults for nil values", func(t *testing.T) {
		r := newEvalResult(nil, nil, time.Millisecond, "abc")
		assert.Equal(t, "None", r.Inspect())
		assert.Zero(t, r.Transcript().Len())
		assert.Equal(t, "abc", r.GetScriptExeID())
		assert.Equal(t, "1ms", r.GetExecTime())
	})

	t.Run("string rendering", func(t *testing.T) {
		r := newEvalResult(starlarkLib.MakeInt(20), transcript.New("20"), 0, "funcao")
		assert.Equal(t, "20", r.Inspect())
		assert.Contains(t, r.String(), "Lines: 1")
		assert.Contains(t, r.String(), "ScriptExeID: funcao")
	})
}

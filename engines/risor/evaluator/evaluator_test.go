package evaluator

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/robbyt/go-fundamentos/engines/risor/compiler"
	"github.com/robbyt/go-fundamentos/platform/script"
	"github.com/robbyt/go-fundamentos/platform/script/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func evalBuilder(t *testing.T, scriptContent string) (*script.ExecutableUnit, *Evaluator) {
	t.Helper()
	l, err := loader.NewFromString(scriptContent)
	require.NoError(t, err)

	handler := slog.NewTextHandler(io.Discard, nil)
	c, err := compiler.New(compiler.WithLogHandler(handler))
	require.NoError(t, err)

	exe, err := script.NewExecutableUnit(handler, "", l, c)
	require.NoError(t, err)

	return exe, New(handler, exe)
}

func TestEvaluator_Eval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		script    string
		wantLines []string
	}{
		{
			name: "if else with concatenation",
			script: `
nome := "Leonardo"
casado := true
if casado {
	print(nome + " é casado")
} else {
	print(nome + " não é casado")
}
`,
			wantLines: []string{"Leonardo é casado"},
		},
		{
			name: "ordered thresholds",
			script: `
nota := 95
if nota >= 90 {
	print("Nota: A")
} else if nota >= 80 {
	print("Nota: B")
} else {
	print("Nota: D")
}
`,
			wantLines: []string{"Nota: A"},
		},
		{
			name: "range and counting loops",
			script: `
for _, fruta := range ["Goiaba", "Uva"] {
	print(fruta)
}
for i := 0; i < 2; i++ {
	print(i)
}
`,
			wantLines: []string{"Goiaba", "Uva", "0", "1"},
		},
		{
			name: "function return value",
			script: `
func soma(x, y) {
	return x + y
}
print(soma(10, 10))
`,
			wantLines: []string{"20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			exe, evaluator := evalBuilder(t, tt.script)

			resp, err := evaluator.Eval(t.Context())
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, resp.Transcript().Lines())
			assert.Equal(t, exe.GetID(), resp.GetScriptExeID())
			assert.NotEmpty(t, resp.GetExecTime())
		})
	}
}

func TestEvaluator_Repeatable(t *testing.T) {
	t.Parallel()

	_, evaluator := evalBuilder(t, `print("Ola Fulano!")`)

	first, err := evaluator.Eval(t.Context())
	require.NoError(t, err)
	second, err := evaluator.Eval(t.Context())
	require.NoError(t, err)

	require.True(t, first.Transcript().Equal(second.Transcript()))
	require.Equal(t, "Ola Fulano!\n", second.Transcript().String())
}

func TestEvaluator_Errors(t *testing.T) {
	t.Parallel()

	t.Run("function as final value", func(t *testing.T) {
		_, evaluator := evalBuilder(t, "func saudacao(nome) {\n\treturn nome\n}\nsaudacao")
		_, err := evaluator.Eval(t.Context())
		require.ErrorIs(t, err, ErrScriptReturned)
	})

	t.Run("cancelled before start", func(t *testing.T) {
		_, evaluator := evalBuilder(t, `print("nunca")`)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := evaluator.Eval(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("nil executable unit", func(t *testing.T) {
		_, err := New(nil, nil).Eval(t.Context())
		require.Error(t, err)
	})

	t.Run("bytecode from another engine", func(t *testing.T) {
		exe, _ := evalBuilder(t, `print(1)`)
		bad := &script.ExecutableUnit{ID: "bad", Content: fakeContent{exe.GetContent()}}

		_, err := New(slog.NewTextHandler(io.Discard, nil), bad).Eval(t.Context())
		require.ErrorIs(t, err, ErrInvalidBytecode)
	})
}

// fakeContent reports a bytecode type no Risor evaluator accepts.
type fakeContent struct {
	script.ExecutableContent
}

func (fakeContent) GetByteCode() any { return "starlark program" }

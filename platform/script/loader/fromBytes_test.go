package loader

import (
	"testing"

	"github.com/robbyt/go-fundamentos/internal/helpers"
	"github.com/stretchr/testify/require"
)

func TestNewFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("valid content", func(t *testing.T) {
		tests := []struct {
			name    string
			content []byte
		}{
			{name: "simple content", content: []byte(SimpleContent)},
			{name: "surrounding whitespace is kept", content: []byte("  " + SimpleContent + "  ")},
			{name: "multiline content", content: []byte(MultilineContent)},
			{name: "mixed line endings", content: []byte("line1\nline2\r\nline3")},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				l, err := NewFromBytes(tc.content)
				require.NoError(t, err)
				require.Equal(t, tc.content, l.content)

				hash := helpers.SHA256Bytes(tc.content)[:8]
				verifyLoader(t, l, "bytes://inline/"+hash, string(tc.content))
			})
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		tests := []struct {
			name    string
			content []byte
		}{
			{name: "nil", content: nil},
			{name: "empty bytes", content: []byte{}},
			{name: "only whitespace", content: []byte("   \n\t   ")},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				l, err := NewFromBytes(tc.content)
				require.ErrorIs(t, err, ErrScriptNotAvailable)
				require.Nil(t, l)
			})
		}
	})
}

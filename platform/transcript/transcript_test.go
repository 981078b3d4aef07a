package transcript

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript(t *testing.T) {
	t.Parallel()

	t.Run("records lines in order", func(t *testing.T) {
		tr := New()
		tr.Println("Ola Fulano!")
		tr.Println("Ola Beltrano!")
		tr.Println("20")

		require.Equal(t, []string{"Ola Fulano!", "Ola Beltrano!", "20"}, tr.Lines())
		assert.Equal(t, 3, tr.Len())
		assert.Equal(t, "Ola Fulano!\nOla Beltrano!\n20\n", tr.String())
	})

	t.Run("embedded newlines split lines", func(t *testing.T) {
		tr := New()
		tr.Println("Banana\nMaça")
		require.Equal(t, []string{"Banana", "Maça"}, tr.Lines())
	})

	t.Run("empty transcript", func(t *testing.T) {
		tr := New()
		assert.Empty(t, tr.String())
		assert.Empty(t, tr.Diff(nil))
		assert.Zero(t, tr.Len())
	})

	t.Run("lines are copied", func(t *testing.T) {
		tr := New("Uva")
		lines := tr.Lines()
		lines[0] = "Manga"
		assert.Equal(t, []string{"Uva"}, tr.Lines())
	})

	t.Run("WriteTo", func(t *testing.T) {
		tr := New("Maior de idade", "Leonardo é casado")
		var buf bytes.Buffer
		n, err := tr.WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), n)
		assert.Equal(t, "Maior de idade\nLeonardo é casado\n", buf.String())
	})
}

func TestTranscript_EqualAndDiff(t *testing.T) {
	t.Parallel()

	want := []string{"Você é maior de idade.", "Nota: C", "Menor de idade"}

	tests := []struct {
		name     string
		got      *Transcript
		wantDiff bool
	}{
		{name: "identical", got: New(want...), wantDiff: false},
		{name: "different grade", got: New("Você é maior de idade.", "Nota: B", "Menor de idade"), wantDiff: true},
		{name: "missing line", got: New("Você é maior de idade.", "Nota: C"), wantDiff: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := tt.got.Diff(want)
			if tt.wantDiff {
				assert.NotEmpty(t, diff)
				assert.False(t, tt.got.Equal(New(want...)))
				return
			}
			assert.Empty(t, diff)
			assert.True(t, tt.got.Equal(New(want...)))
		})
	}

	assert.False(t, New(want...).Equal(nil))
}

func TestTranscript_ConcurrentPrintln(t *testing.T) {
	t.Parallel()

	tr := New()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Println(fmt.Sprint(i))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, tr.Len())
}

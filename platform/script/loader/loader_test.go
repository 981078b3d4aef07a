package loader

import (
	"io"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	SimpleContent    = `print("Ola Fulano!")`
	MultilineContent = "nome = \"Leonardo\"\nidade = 27\nprint(nome)"
)

var (
	_ Loader = (*FromString)(nil)
	_ Loader = (*FromBytes)(nil)
	_ Loader = (*FromFS)(nil)
)

// verifyLoader checks the source URL scheme and that the reader yields want.
func verifyLoader(t *testing.T, l Loader, expectedURLString string, want string) {
	t.Helper()
	require.NotNil(t, l)

	sourceURL := l.GetSourceURL()
	require.NotNil(t, sourceURL)

	if expectedURLString != "" {
		parsedURL, err := url.Parse(expectedURLString)
		require.NoError(t, err)
		require.Equal(t, parsedURL.Scheme, sourceURL.Scheme)
		require.Equal(t, parsedURL.Path, sourceURL.Path)
	}

	reader, err := l.GetReader()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, reader.Close(), "Failed to close reader")
	})

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, want, string(got))
}

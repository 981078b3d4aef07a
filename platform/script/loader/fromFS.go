package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
)

// FromFS implements the Loader interface for a single file inside an fs.FS,
// such as the lesson scripts embedded in the binary.
type FromFS struct {
	fsys      fs.FS
	path      string
	sourceURL *url.URL
}

// NewFromFS creates a loader for path within fsys. The file must exist and not be a directory.
func NewFromFS(fsys fs.FS, path string) (*FromFS, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: filesystem is nil", ErrScriptNotAvailable)
	}
	if !fs.ValidPath(path) {
		return nil, fmt.Errorf("%w: invalid path %q", ErrScriptNotAvailable, path)
	}

	info, err := fs.Stat(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrScriptNotAvailable, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrScriptNotAvailable, path)
	}

	return &FromFS{
		fsys:      fsys,
		path:      path,
		sourceURL: &url.URL{Scheme: "fs", Path: "/" + path},
	}, nil
}

func (l *FromFS) String() string {
	return fmt.Sprintf("loader.FromFS{Path: %s}", l.path)
}

// GetReader opens the file. The caller must close the returned reader.
func (l *FromFS) GetReader() (io.ReadCloser, error) {
	f, err := l.fsys.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	return f, nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromFS) GetSourceURL() *url.URL {
	return l.sourceURL
}

package loader

import (
	"errors"
	"io"
	"net/url"
)

// ErrScriptNotAvailable is returned when a loader has no script content to offer.
var ErrScriptNotAvailable = errors.New("script not available")

// sourceHashLength is the number of hex characters of the content hash used in source URLs.
const sourceHashLength = 8

// Loader is an interface used by the engines to load scripts.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}

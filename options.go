package fundamentos

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/robbyt/go-fundamentos/lessons"
)

// Option configures a Runner.
type Option func(*Runner) error

// WithEngine selects the scripting engine the lessons run on.
func WithEngine(engine types.Type) Option {
	return func(r *Runner) error {
		if !slices.Contains(types.All(), engine) {
			return fmt.Errorf("%w: %q", types.ErrUnknownType, engine)
		}
		r.engine = engine
		return nil
	}
}

// WithLogHandler sets the slog handler shared by the runner and the engines.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) error {
		if handler == nil {
			return errors.New("log handler cannot be nil")
		}
		r.logHandler = handler
		return nil
	}
}

// WithCatalog replaces the embedded lesson catalog.
func WithCatalog(catalog *lessons.Catalog) Option {
	return func(r *Runner) error {
		if catalog == nil {
			return errors.New("catalog cannot be nil")
		}
		r.catalog = catalog
		return nil
	}
}

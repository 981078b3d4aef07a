// Package lessons holds the catalog of teaching scripts embedded in the binary.
package lessons

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/robbyt/go-fundamentos/platform/script/loader"
	"gopkg.in/yaml.v3"
)

const (
	manifestFile = "manifest.yaml"
	scriptsDir   = "scripts"
)

var (
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrInvalidManifest = errors.New("invalid lesson manifest")
)

//go:embed manifest.yaml scripts
var embedded embed.FS

// Lesson describes one teaching script.
type Lesson struct {
	Name     string   `yaml:"name"`
	Order    int      `yaml:"order"`
	Title    string   `yaml:"title"`
	Topic    string   `yaml:"topic"`
	Expected []string `yaml:"expected"`
}

// ScriptPath returns the path of the lesson's script for engine, relative to the catalog root.
func (l Lesson) ScriptPath(engine types.Type) string {
	return path.Join(scriptsDir, string(engine), fmt.Sprintf("%d-%s%s", l.Order, l.Name, engine.Extension()))
}

func (l Lesson) String() string {
	return fmt.Sprintf("%d-%s", l.Order, l.Name)
}

type manifest struct {
	Lessons []Lesson `yaml:"lessons"`
}

// Catalog is a validated, read-only set of lessons.
type Catalog struct {
	fsys    fs.FS
	lessons []Lesson
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary. It is loaded once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(embedded)
	})
	return defaultCatalog, defaultErr
}

// Load reads and validates the manifest in fsys. Every lesson must have a unique
// name and order, a non-empty expected output and a script for every engine.
func Load(fsys fs.FS) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	if err := validate(fsys, m.Lessons); err != nil {
		return nil, err
	}

	lessons := slices.Clone(m.Lessons)
	slices.SortFunc(lessons, func(a, b Lesson) int { return a.Order - b.Order })

	return &Catalog{fsys: fsys, lessons: lessons}, nil
}

func validate(fsys fs.FS, lessons []Lesson) error {
	if len(lessons) == 0 {
		return fmt.Errorf("%w: no lessons", ErrInvalidManifest)
	}

	names := make(map[string]struct{}, len(lessons))
	orders := make(map[int]struct{}, len(lessons))
	for _, l := range lessons {
		switch {
		case l.Name == "":
			return fmt.Errorf("%w: lesson %d has no name", ErrInvalidManifest, l.Order)
		case l.Order < 1:
			return fmt.Errorf("%w: lesson %q has order %d", ErrInvalidManifest, l.Name, l.Order)
		case len(l.Expected) == 0:
			return fmt.Errorf("%w: lesson %q has no expected output", ErrInvalidManifest, l.Name)
		}

		if _, dup := names[l.Name]; dup {
			return fmt.Errorf("%w: duplicate lesson name %q", ErrInvalidManifest, l.Name)
		}
		names[l.Name] = struct{}{}

		if _, dup := orders[l.Order]; dup {
			return fmt.Errorf("%w: duplicate lesson order %d", ErrInvalidManifest, l.Order)
		}
		orders[l.Order] = struct{}{}

		for _, engine := range types.All() {
			if _, err := fs.Stat(fsys, l.ScriptPath(engine)); err != nil {
				return fmt.Errorf("%w: lesson %q: %w", ErrInvalidManifest, l.Name, err)
			}
		}
	}
	return nil
}

// List returns the lessons sorted by order.
func (c *Catalog) List() []Lesson {
	return slices.Clone(c.lessons)
}

// Get finds a lesson by name (case-insensitive) or by its order number.
func (c *Catalog) Get(ref string) (Lesson, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		for _, l := range c.lessons {
			if l.Order == n {
				return l, nil
			}
		}
		return Lesson{}, fmt.Errorf("%w: %s", ErrLessonNotFound, ref)
	}

	for _, l := range c.lessons {
		if strings.EqualFold(l.Name, ref) || strings.EqualFold(l.String(), ref) {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("%w: %q", ErrLessonNotFound, ref)
}

// Loader returns a script loader for the lesson's script in the given engine.
func (c *Catalog) Loader(l Lesson, engine types.Type) (loader.Loader, error) {
	return loader.NewFromFS(c.fsys, l.ScriptPath(engine))
}

// Source returns the lesson's script, comments included.
func (c *Catalog) Source(l Lesson, engine types.Type) (string, error) {
	ldr, err := c.Loader(l, engine)
	if err != nil {
		return "", err
	}

	r, err := ldr.GetReader()
	if err != nil {
		return "", err
	}
	defer func() { _ = r.Close() }()

	src, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", l.ScriptPath(engine), err)
	}
	return string(src), nil
}

package script

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/robbyt/go-fundamentos/internal/helpers"
	"github.com/robbyt/go-fundamentos/platform/script/loader"
)

const checksumLength = 12

var (
	ErrCompilerNil = errors.New("compiler is nil")
	ErrLoaderNil   = errors.New("loader is nil")
)

// ExecutableUnit is a compiled script ready to be evaluated any number of times.
type ExecutableUnit struct {
	// ID identifies the unit; defaults to a short hash of the script source.
	ID string

	// CreatedAt records when this executable unit was compiled.
	CreatedAt time.Time

	// ScriptLoader is where the source was read from.
	ScriptLoader loader.Loader

	// Compiler is the engine-specific compiler that produced Content.
	Compiler Compiler

	// Content holds the compiled bytecode and source of the script.
	Content ExecutableContent

	logger *slog.Logger
}

// NewExecutableUnit reads the script from scriptLoader and compiles it once.
// When versionID is empty the ID is derived from the script source.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
) (*ExecutableUnit, error) {
	_, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrCompilerNil
	}
	if scriptLoader == nil {
		return nil, ErrLoaderNil
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.ShortSHA256([]byte(exe.GetSource()), checksumLength)
	}

	logger = logger.With("ID", versionID)
	logger.Debug("executable unit ready", "engine", exe.GetMachineType())

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Compiler:     compiler,
		Content:      exe,
		logger:       logger,
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

// GetID returns the unique identifier for this unit.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the compiled script content.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetMachineType returns the engine this unit was compiled for.
func (exe *ExecutableUnit) GetMachineType() types.Type {
	return exe.Content.GetMachineType()
}

func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}

package script

import (
	"github.com/robbyt/go-fundamentos/engines/types"
)

// ExecutableContent represents validated script content that is ready for execution.
// It provides access to the script's source code and its compiled bytecode.
type ExecutableContent interface {
	// GetSource returns the original script content as a string.
	GetSource() string

	// GetByteCode returns the compiled bytecode of the script in an engine-specific format.
	// The evaluator asserts it into the type its engine requires and fails at runtime when
	// the engine type and bytecode do not match.
	GetByteCode() any

	// GetMachineType returns the engine type this script is intended to run on.
	GetMachineType() types.Type
}

package compiler

import (
	"github.com/robbyt/go-fundamentos/engines/types"
	starlarkLib "go.starlark.net/starlark"
)

// Executable is a compiled Starlark script.
type Executable struct {
	scriptBodyBytes []byte
	ByteCode        *starlarkLib.Program
}

// NewExecutable returns nil when either the source or the program is missing.
func NewExecutable(scriptBodyBytes []byte, byteCode *starlarkLib.Program) *Executable {
	if len(scriptBodyBytes) == 0 || byteCode == nil {
		return nil
	}

	return &Executable{
		scriptBodyBytes: scriptBodyBytes,
		ByteCode:        byteCode,
	}
}

func (e *Executable) GetSource() string {
	return string(e.scriptBodyBytes)
}

func (e *Executable) GetByteCode() any {
	return e.ByteCode
}

func (e *Executable) GetStarlarkByteCode() *starlarkLib.Program {
	return e.ByteCode
}

func (e *Executable) GetMachineType() types.Type {
	return types.Starlark
}

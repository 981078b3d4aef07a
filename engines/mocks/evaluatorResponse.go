package mocks

import (
	"github.com/robbyt/go-fundamentos/platform/transcript"
	"github.com/stretchr/testify/mock"
)

// EvaluatorResponse is a mock implementation of platform.EvaluatorResponse.
type EvaluatorResponse struct {
	mock.Mock
}

// Transcript returns a mockable transcript. A []string return value is wrapped
// in a new transcript.
func (m *EvaluatorResponse) Transcript() *transcript.Transcript {
	args := m.Called()
	switch v := args.Get(0).(type) {
	case *transcript.Transcript:
		return v
	case []string:
		return transcript.New(v...)
	default:
		return nil
	}
}

// Inspect returns a mockable string.
func (m *EvaluatorResponse) Inspect() string {
	args := m.Called()
	return args.String(0)
}

// GetScriptExeID returns a mockable script version.
func (m *EvaluatorResponse) GetScriptExeID() string {
	args := m.Called()
	return args.String(0)
}

// GetExecTime returns a mockable execution time.
func (m *EvaluatorResponse) GetExecTime() string {
	args := m.Called()
	return args.String(0)
}

package script

import (
	"io"
	"net/url"

	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/stretchr/testify/mock"
)

type MockCompiler struct {
	mock.Mock
}

func (m *MockCompiler) Compile(scriptReader io.ReadCloser) (ExecutableContent, error) {
	args := m.Called(scriptReader)
	execContent, ok := args.Get(0).(ExecutableContent)
	if !ok {
		return nil, args.Error(1)
	}
	return execContent, args.Error(1)
}

type MockExecutableContent struct {
	mock.Mock
}

func (m *MockExecutableContent) GetSource() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockExecutableContent) GetByteCode() any {
	args := m.Called()
	return args.Get(0)
}

func (m *MockExecutableContent) GetMachineType() types.Type {
	args := m.Called()
	return args.Get(0).(types.Type)
}

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) GetReader() (io.ReadCloser, error) {
	args := m.Called()
	reader, _ := args.Get(0).(io.ReadCloser)
	return reader, args.Error(1)
}

func (m *mockLoader) GetSourceURL() *url.URL {
	args := m.Called()
	return args.Get(0).(*url.URL)
}

package script

import "io"

// Compiler validates a script and turns it into ExecutableContent.
// It checks syntax and undefined names before any lesson is run, so a broken
// lesson fails at load time rather than halfway through its output.
type Compiler interface {
	// Compile reads the whole script, closes the reader and returns the compiled content.
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}

// Package transcript records the lines a lesson prints, in order.
package transcript

import (
	"io"
	"strings"
	"sync"

	"github.com/google/go-cmp/cmp"
)

// Transcript is the ordered output of one lesson run. It is safe for concurrent use.
type Transcript struct {
	mu    sync.RWMutex
	lines []string
}

// New returns an empty transcript, or one seeded with lines.
func New(lines ...string) *Transcript {
	t := &Transcript{}
	if len(lines) > 0 {
		t.lines = append(make([]string, 0, len(lines)), lines...)
	}
	return t
}

// Println appends one printed line. Embedded newlines split into separate lines
// so the transcript matches what a terminal would show.
func (t *Transcript) Println(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, strings.Split(line, "\n")...)
}

// Lines returns a copy of the recorded lines.
func (t *Transcript) Lines() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.lines)
}

// String renders the transcript as the script would have printed it:
// every line terminated by a newline.
func (t *Transcript) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.lines) == 0 {
		return ""
	}
	return strings.Join(t.lines, "\n") + "\n"
}

// WriteTo implements io.WriterTo.
func (t *Transcript) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// Equal reports whether both transcripts hold the same lines.
func (t *Transcript) Equal(other *Transcript) bool {
	if other == nil {
		return false
	}
	return cmp.Equal(t.Lines(), other.Lines())
}

// Diff compares the transcript against the expected lines. It returns an empty
// string when they match, otherwise a (-want +got) report.
func (t *Transcript) Diff(want []string) string {
	got := t.Lines()
	if len(want) == 0 && len(got) == 0 {
		return ""
	}
	return cmp.Diff(want, got)
}

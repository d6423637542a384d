// Package output provides user-facing printing for kit commands: the Splog
// printer for command results and lipgloss-based styling for refs, hashes,
// and diff hunks.
package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides structured command output
type Splog struct {
	writer io.Writer
}

// NewSplog creates a new splog instance writing to stdout
func NewSplog() *Splog {
	return &Splog{writer: os.Stdout}
}

// NewSplogTo creates a splog writing to w (used by tests)
func NewSplogTo(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Page writes pre-formatted output as-is
func (s *Splog) Page(content string) {
	fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "⚠️  "+format+"\n", args...)
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "💡 "+format+"\n", args...)
}

// Package runtime provides the per-command context: the repository handle,
// the user-facing printer, and the diagnostic logger. Commands resolve it
// once at the top of RunE instead of threading three parameters around.
package runtime

import (
	"os"

	"github.com/charmbracelet/log"

	"kit.dev/kit/internal/output"
	"kit.dev/kit/internal/repo"
)

// Context provides access to the repository and output for commands
type Context struct {
	Repo  *repo.Repository
	Splog *output.Splog
	Log   *log.Logger
}

// NewLogger builds the diagnostic logger. Debug output is enabled by the
// --verbose flag or the KIT_DEBUG environment variable.
func NewLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "kit"})
	if verbose || os.Getenv("KIT_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// GetContext opens the repository in the current directory.
func GetContext(verbose bool) (*Context, error) {
	logger := NewLogger(verbose)
	r, err := repo.Open(".", logger)
	if err != nil {
		return nil, err
	}
	return &Context{
		Repo:  r,
		Splog: output.NewSplog(),
		Log:   logger,
	}, nil
}

// InitContext initializes (or reopens) the repository in the current
// directory. Used only by the init command.
func InitContext(verbose bool) (*Context, error) {
	logger := NewLogger(verbose)
	r, err := repo.Init(".", logger)
	if err != nil {
		return nil, err
	}
	return &Context{
		Repo:  r,
		Splog: output.NewSplog(),
		Log:   logger,
	}, nil
}

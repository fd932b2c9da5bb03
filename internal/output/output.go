// Package output handles console output and run report rendering for astrosort.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	IsTTY     bool      // Whether output is a terminal
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	return Config{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Output writes console messages with verbose filtering.
type Output struct {
	config Config
}

// New creates an Output with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{config: config}
}

// Info prints a message unconditionally.
func (o *Output) Info(format string, args ...interface{}) {
	fmt.Fprintf(o.config.Writer, format+"\n", args...)
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	fmt.Fprintf(o.config.Writer, format+"\n", args...)
}

// Warn prints a warning to the error writer.
func (o *Output) Warn(format string, args ...interface{}) {
	prefix := "Warning: "
	if o.config.IsTTY {
		prefix = "\x1b[33mWarning:\x1b[0m "
	}
	fmt.Fprintf(o.config.ErrWriter, prefix+format+"\n", args...)
}

// IsVerbose reports whether verbose mode is enabled.
func (o *Output) IsVerbose() bool {
	return o.config.Verbose
}

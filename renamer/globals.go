package internal

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	DefaultAppName        = "uuid-renamer"
	DefaultAppDescription = "Rename files to random UUID-based names. Only files are renamed, directories keep their names."

	// DefaultSidecarPatterns are gitignore-style patterns for platform metadata
	// files that are never renamed during a directory walk.
	DefaultSidecarPatterns = []string{".DS_Store"}

	// DefaultLogTimeFormat is the console log timestamp layout
	DefaultLogTimeFormat = "15:04:05"
)

// GetLogger returns a properly configured zerolog logger instance writing to stderr
func GetLogger() zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.WarnLevel)
}

// NewLogger returns a console logger on w filtered at level.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: DefaultLogTimeFormat,
	}).Level(level).With().Timestamp().Logger()
}

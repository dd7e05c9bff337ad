// Package logging adapts zerolog to the narrow Logger capability interfaces
// this module's core packages depend on (ingestmodel.Logger and similar),
// so a core package never imports zerolog directly.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger wraps a zerolog.Logger to satisfy the narrow Logger
// capability interfaces (Warn(msg string, kv ...any), plus Info for
// config.Logger) that the other packages accept.
type ZeroLogger struct {
	log zerolog.Logger
}

// New builds a ZeroLogger writing human-readable output to stderr, with
// debug-level detail gated by verbose.
func New(verbose bool) *ZeroLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	return &ZeroLogger{log: l}
}

// Warn logs a warning with alternating key/value pairs appended as fields.
func (z *ZeroLogger) Warn(msg string, kv ...any) {
	event := z.log.Warn()
	attachFields(event, kv)
	event.Msg(msg)
}

// Info logs an informational message.
func (z *ZeroLogger) Info(msg string, kv ...any) {
	event := z.log.Info()
	attachFields(event, kv)
	event.Msg(msg)
}

// Error logs an error, attaching err as the "error" field alongside any
// additional key/value pairs.
func (z *ZeroLogger) Error(err error, msg string, kv ...any) {
	event := z.log.Error().Err(err)
	attachFields(event, kv)
	event.Msg(msg)
}

// Fatal logs an error at fatal level and terminates the process, matching
// zerolog's own Fatal semantics.
func (z *ZeroLogger) Fatal(err error, msg string, kv ...any) {
	event := z.log.Fatal().Err(err)
	attachFields(event, kv)
	event.Msg(msg)
}

func attachFields(event *zerolog.Event, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		event.Interface(key, kv[i+1])
	}
}

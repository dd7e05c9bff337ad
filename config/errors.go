package config

import "errors"

// ErrInvalid wraps every accumulated configuration problem found by Load:
// missing mandatory keys, unparsable values, or an unrecognized
// reader/writer type. Fatal, surfaced before any ingest or generation work
// begins (spec.md §7 ConfigInvalid).
var ErrInvalid = errors.New("config: invalid configuration")

// ErrOpen indicates the configuration file itself could not be opened.
var ErrOpen = errors.New("config: could not open file")

// Logger is the diagnostic-stream capability Load reports warnings
// (unparsable SCALE, unknown keys, low scale factor, wall-clock seed
// derivation) through.
type Logger interface {
	Warn(msg string, kv ...any)
	Info(msg string, kv ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any) {}
func (noopLogger) Info(string, ...any) {}

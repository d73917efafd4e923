package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// Setup returns a logger appending to path, or a no-op logger when path
// is empty (the terminal belongs to the UI, so there is no console sink).
// The returned func closes the underlying file and is safe to call when
// no file was opened.
func Setup(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	zerolog.TimeFieldFormat = timeFormat
	zerolog.ErrorFieldName = "err"

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file %q: %w", path, err)
	}

	logger := zerolog.New(zerolog.SyncWriter(f)).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}

package hime

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logOnce   sync.Once
	logger    zerolog.Logger
)

// log returns the package-wide zerolog logger, built once on first use —
// the teacher's own pattern of lazily initializing a ready-flagged
// resource (accelReady/decReady in table.go) rather than an eager init().
func log() *zerolog.Logger {
	logOnce.Do(func() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
			With().Timestamp().Str("component", "hime").Logger().
			Level(zerolog.InfoLevel)
	})
	return &logger
}

// SetLogLevel adjusts the package logger's verbosity; hosts call this
// before LoadLexicon if they want debug-level detail (e.g. duplicate-key
// reports from the Traditional/Simplified table loader).
func SetLogLevel(level zerolog.Level) {
	log()
	logger = logger.Level(level)
}

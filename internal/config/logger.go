package config

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds a timestamped logger writing to w, with the level taken
// from ARCADE_LOG_LEVEL (info when unset or invalid).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv("ARCADE_LOG_LEVEL", "info"))
	if err != nil {
		logger.Warn("invalid ARCADE_LOG_LEVEL, using info", "err", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// NewStderrLogger is NewLogger writing to stderr.
func NewStderrLogger(prefix string) *log.Logger {
	return NewLogger(os.Stderr, prefix)
}

// Seed returns ARCADE_SEED, or the current time when unset or zero.
func Seed() int64 {
	if seed := GetEnvInt("ARCADE_SEED", 0); seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// NewRand returns a random source seeded from Seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(Seed()))
}

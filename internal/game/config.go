package game

import (
	"os"
	"strconv"
	"time"
)

// Env vars consulted when the matching flag is not given.
const (
	EnvSeed    = "TREASUREHUNT_SEED"
	EnvTuning  = "TREASUREHUNT_TUNING"
	EnvJournal = "TREASUREHUNT_JOURNAL"
)

// Config holds game configuration options.
type Config struct {
	// Seed for world generation. A seed of 0 means one is picked from the
	// clock; Session.Seed reports which.
	Seed int64
	// TuningPath is an optional YAML threshold override file.
	TuningPath string
	// JournalPath, when set, records every intent for later replay.
	JournalPath string
}

// WithEnv fills unset fields from the environment.
func (c Config) WithEnv() Config {
	if c.Seed == 0 {
		if v, err := strconv.ParseInt(os.Getenv(EnvSeed), 10, 64); err == nil {
			c.Seed = v
		}
	}
	if c.TuningPath == "" {
		c.TuningPath = os.Getenv(EnvTuning)
	}
	if c.JournalPath == "" {
		c.JournalPath = os.Getenv(EnvJournal)
	}
	return c
}

func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

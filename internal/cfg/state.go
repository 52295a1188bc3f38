package cfg

import "time"

type StateConfig struct {
	// Timeout bounds how long an issued state stays redeemable.
	Timeout time.Duration
}

func (l *Loader) loadState() StateConfig {
	return StateConfig{
		Timeout: l.getEnvDurationOrDefault("STATE_TIMEOUT", 10*time.Minute),
	}
}

// internal/workers/matching/find-scholarship-matches/config.go
package findscholarshipmatches

import "time"

type Config struct {
	MinScore float64
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MinScore: 50,
		Timeout:  15 * time.Second,
	}
}

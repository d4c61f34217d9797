// internal/workers/catalog/lookup-scholarship/config.go
package lookupscholarship

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

// internal/workers/catalog/search-scholarships/config.go
package searchscholarships

import "time"

type Config struct {
	// Source selects where queries run: "catalog" or "elasticsearch".
	Source       string
	Index        string
	DefaultLimit int
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Source:       "catalog",
		Index:        "scholarships",
		DefaultLimit: 10,
		Timeout:      10 * time.Second,
	}
}

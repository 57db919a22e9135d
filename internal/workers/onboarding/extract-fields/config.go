// internal/workers/onboarding/extract-fields/config.go
package extractfields

import (
	"time"

	"onboarding-workers/internal/common/config"
)

type Config struct {
	BaseURL          string
	APIKey           string
	ProjectID        string
	Location         string
	Processors       map[string]string
	DefaultProcessor string
	Timeout          time.Duration
	CacheTTL         time.Duration
}

// LoadConfig maps the extraction section of the application config.
func LoadConfig(cfg config.ExtractionConfig) *Config {
	return &Config{
		BaseURL:          cfg.BaseURL,
		APIKey:           cfg.APIKey,
		ProjectID:        cfg.ProjectID,
		Location:         cfg.Location,
		Processors:       cfg.Processors,
		DefaultProcessor: cfg.DefaultProcessor,
		Timeout:          config.GetDuration(cfg.Timeout),
		CacheTTL:         time.Duration(cfg.CacheTTL) * time.Second,
	}
}

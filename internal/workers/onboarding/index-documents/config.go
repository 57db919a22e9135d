// internal/workers/onboarding/index-documents/config.go
package indexdocuments

import (
	"time"

	"onboarding-workers/internal/common/config"
)

type Config struct {
	Index   string
	Timeout time.Duration
}

func LoadConfig(cfg config.ElasticsearchConfig) *Config {
	return &Config{
		Index:   cfg.DocumentIndex,
		Timeout: 10 * time.Second,
	}
}

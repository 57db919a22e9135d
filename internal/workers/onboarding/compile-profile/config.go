// internal/workers/onboarding/compile-profile/config.go
package compileprofile

import (
	"time"

	"onboarding-workers/internal/common/config"
)

type Config struct {
	Timeout      time.Duration
	Placeholders ContactPlaceholderPolicy
}

func LoadConfig(cfg config.ContactPlaceholdersConfig) *Config {
	return &Config{
		Timeout: 5 * time.Second,
		Placeholders: ContactPlaceholderPolicy{
			Enabled: cfg.Enabled,
			Email:   cfg.Email,
			Phone:   cfg.Phone,
		},
	}
}

// internal/workers/onboarding/provision-account/config.go
package provisionaccount

import (
	"time"

	"onboarding-workers/internal/common/config"
	"onboarding-workers/internal/models"
)

type Config struct {
	Timeout            time.Duration
	DefaultAccountType models.AccountType
	MaxAttempts        int
}

func LoadConfig(cfg config.OnboardingConfig) *Config {
	return &Config{
		Timeout:            10 * time.Second,
		DefaultAccountType: models.AccountType(cfg.DefaultAccountType),
		MaxAttempts:        cfg.AccountNumberAttempts,
	}
}

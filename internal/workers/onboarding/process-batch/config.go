// internal/workers/onboarding/process-batch/config.go
package processbatch

import (
	"time"

	"onboarding-workers/internal/common/config"
	"onboarding-workers/internal/models"
)

type Config struct {
	Timeout            time.Duration
	DefaultAccountType models.AccountType
}

func LoadConfig(cfg config.OnboardingConfig) *Config {
	return &Config{
		Timeout:            2 * time.Minute,
		DefaultAccountType: models.AccountType(cfg.DefaultAccountType),
	}
}

// internal/workers/onboarding/validate-profile/config.go
package validateprofile

import "time"

type Config struct {
	Timeout time.Duration
	// FailOnInvalid throws PROFILE_VALIDATION_FAILED instead of completing with valid=false.
	FailOnInvalid bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}

// internal/workers/onboarding/notify-customer/config.go
package notifycustomer

import (
	"time"

	"onboarding-workers/internal/common/config"
)

type Config struct {
	Timeout      time.Duration
	EmailEnabled bool
	FromEmail    string
	SNSEnabled   bool
	TopicARN     string
}

func LoadConfig(cfg config.NotificationConfig) *Config {
	return &Config{
		Timeout:      15 * time.Second,
		EmailEnabled: cfg.AWS.SES.Enabled,
		FromEmail:    cfg.AWS.SES.FromEmail,
		SNSEnabled:   cfg.AWS.SNS.Enabled,
		TopicARN:     cfg.AWS.SNS.TopicARN,
	}
}

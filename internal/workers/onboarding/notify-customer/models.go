// internal/workers/onboarding/notify-customer/models.go
package notifycustomer

import "onboarding-workers/internal/models"

const (
	EventAccountCreated   = "account_created"
	EventAccountActivated = "account_activated"
)

type Input struct {
	EventType       string                  `json:"eventType,omitempty"`
	CustomerProfile *models.CustomerProfile `json:"customerProfile"`
	BankAccount     *models.BankAccount     `json:"bankAccount"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	EventType      string `json:"eventType"`
	EmailMessageID string `json:"emailMessageId,omitempty"`
	SNSMessageID   string `json:"snsMessageId,omitempty"`
}

// Notification is what a subscriber on the topic receives.
type Notification struct {
	ID            string               `json:"id"`
	EventType     string               `json:"eventType"`
	CustomerID    string               `json:"customerId"`
	CustomerName  string               `json:"customerName"`
	Email         string               `json:"-"`
	AccountNumber string               `json:"accountNumber"`
	AccountType   models.AccountType   `json:"accountType"`
	AccountStatus models.AccountStatus `json:"accountStatus"`
}

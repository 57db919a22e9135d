// internal/workers/onboarding/notify-customer/notifier.go
package notifycustomer

import (
	"context"
	"encoding/json"
	"fmt"

	appaws "onboarding-workers/internal/common/aws"
	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
)

// Notifier emails the customer through SES and publishes the event to SNS.
// Either client may be nil, which disables that channel.
type Notifier struct {
	ses       appaws.SESAPI
	sns       appaws.SNSAPI
	fromEmail string
	topicARN  string
	logger    logger.Logger
}

func NewNotifier(config *Config, ses appaws.SESAPI, sns appaws.SNSAPI, log logger.Logger) *Notifier {
	n := &Notifier{fromEmail: config.FromEmail, topicARN: config.TopicARN, logger: log}
	if config.EmailEnabled {
		n.ses = ses
	}
	if config.SNSEnabled {
		n.sns = sns
	}
	return n
}

// EventFor picks the event matching the account's current status.
func EventFor(account models.BankAccount) string {
	if account.Status == models.AccountStatusActive {
		return EventAccountActivated
	}
	return EventAccountCreated
}

// NewNotification builds the event for profile and account.
func NewNotification(eventType string, profile models.CustomerProfile, account models.BankAccount) Notification {
	if eventType == "" {
		eventType = EventFor(account)
	}
	return Notification{
		ID:            uuid.NewString(),
		EventType:     eventType,
		CustomerID:    profile.ID,
		CustomerName:  profile.FullName(),
		Email:         profile.ContactEmail(),
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		AccountStatus: account.Status,
	}
}

func (n *Notifier) Send(ctx context.Context, note Notification) (*Output, error) {
	out := &Output{NotificationID: note.ID, EventType: note.EventType}

	if n.ses != nil && note.Email != "" {
		subject, body := emailContent(note)
		res, err := n.ses.SendEmail(ctx, appaws.TextEmail(n.fromEmail, note.Email, subject, body))
		if err != nil {
			return nil, apperrors.NewNotificationSendFailedError("email", err)
		}
		out.EmailMessageID = aws.ToString(res.MessageId)
	}

	if n.sns != nil && n.topicARN != "" {
		payload, err := json.Marshal(note)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		res, err := n.sns.Publish(ctx, appaws.TopicEvent(n.topicARN, note.EventType, string(payload)))
		if err != nil {
			return nil, apperrors.NewNotificationSendFailedError("sns", err)
		}
		out.SNSMessageID = aws.ToString(res.MessageId)
	}

	n.logger.Info("customer notified", map[string]interface{}{
		"notificationId": note.ID,
		"eventType":      note.EventType,
		"customerId":     note.CustomerID,
		"emailSent":      out.EmailMessageID != "",
		"eventPublished": out.SNSMessageID != "",
	})
	return out, nil
}

// NotifyOnboarded is the best-effort hook used at the end of a batch.
func (n *Notifier) NotifyOnboarded(ctx context.Context, profile models.CustomerProfile, account models.BankAccount) error {
	_, err := n.Send(ctx, NewNotification("", profile, account))
	return err
}

func emailContent(note Notification) (string, string) {
	greeting := "Hello"
	if note.CustomerName != "" {
		greeting += " " + note.CustomerName
	}

	if note.EventType == EventAccountActivated {
		return "Your account is ready",
			fmt.Sprintf("%s,\n\nYour %s account %s has been created and activated.\n",
				greeting, note.AccountType, note.AccountNumber)
	}
	return "Your account is pending verification",
		fmt.Sprintf("%s,\n\nYour %s account %s has been created and is awaiting document verification. We will let you know once it is active.\n",
			greeting, note.AccountType, note.AccountNumber)
}

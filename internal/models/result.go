// internal/models/result.go
package models

// ProcessingStatus is the terminal status of an onboarding run.
type ProcessingStatus string

const (
	ProcessingCompleted           ProcessingStatus = "completed"
	ProcessingPendingVerification ProcessingStatus = "pending_verification"
	ProcessingValidationFailed    ProcessingStatus = "validation_failed"
	ProcessingError               ProcessingStatus = "error"
)

const (
	MessageCompleted           = "Account created and activated successfully"
	MessagePendingVerification = "Account created, pending document verification"
	MessageValidationFailed    = "Customer data validation failed"
	MessageScanningFailed      = "Document scanning failed"
	MessageProcessingError     = "An error occurred during the onboarding process"
	ErrorNoDocuments           = "No documents could be processed"
)

type ProcessingResult struct {
	Status          ProcessingStatus    `json:"status"`
	Message         string              `json:"message"`
	CustomerProfile *CustomerProfile    `json:"customerProfile,omitempty"`
	BankAccount     *BankAccount        `json:"bankAccount,omitempty"`
	Documents       []ProcessedDocument `json:"documents,omitempty"`
	Error           string              `json:"error,omitempty"`
}

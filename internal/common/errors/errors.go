// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidJobInput ErrorCode = "INVALID_JOB_INPUT"

	ErrCodeExtractionFailed        ErrorCode = "EXTRACTION_FAILED"
	ErrCodeExtractionTimeout       ErrorCode = "EXTRACTION_TIMEOUT"
	ErrCodeDocumentScanningFailed  ErrorCode = "DOCUMENT_SCANNING_FAILED"
	ErrCodeDocumentValidation      ErrorCode = "DOCUMENT_VALIDATION_FAILED"
	ErrCodeProfileValidationFailed ErrorCode = "PROFILE_VALIDATION_FAILED"

	ErrCodeAccountProvisioningFailed ErrorCode = "ACCOUNT_PROVISIONING_FAILED"
	ErrCodeAccountNumberCollision    ErrorCode = "ACCOUNT_NUMBER_COLLISION"
	ErrCodeAccountNotFound           ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeAccountActivationFailed   ErrorCode = "ACCOUNT_ACTIVATION_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"

	ErrCodeDocumentIndexingFailed ErrorCode = "DOCUMENT_INDEXING_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key to the error metadata and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewInvalidJobInputError creates a non-retryable input error.
func NewInvalidJobInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJobInput,
		Message:   "Job variables could not be parsed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExtractionFailedError creates a retryable extraction backend error.
func NewExtractionFailedError(filename string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExtractionFailed,
		Message:   "Field extraction failed",
		Details:   fmt.Sprintf("filename: %s, error: %s", filename, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewExtractionTimeoutError creates a retryable extraction timeout error.
func NewExtractionTimeoutError(filename string) *StandardError {
	return &StandardError{
		Code:      ErrCodeExtractionTimeout,
		Message:   "Field extraction timeout",
		Details:   fmt.Sprintf("filename: %s", filename),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDocumentScanningFailedError creates a non-retryable error for a batch that produced no documents.
func NewDocumentScanningFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentScanningFailed,
		Message:   "Document scanning failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewDocumentValidationError(documentID string, kind string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentValidation,
		Message:   "Document failed validation",
		Details:   fmt.Sprintf("documentId: %s, kind: %s", documentID, kind),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileValidationFailedError creates a non-retryable profile error.
func NewProfileValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileValidationFailed,
		Message:   "Customer data validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAccountProvisioningFailedError creates a retryable account store error.
func NewAccountProvisioningFailedError(customerID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAccountProvisioningFailed,
		Message:   "Bank account provisioning failed",
		Details:   fmt.Sprintf("customerId: %s, error: %s", customerID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAccountNumberCollisionError is raised when every generated number was already taken.
func NewAccountNumberCollisionError(customerID string, attempts int) *StandardError {
	return &StandardError{
		Code:      ErrCodeAccountNumberCollision,
		Message:   "Could not allocate a unique account number",
		Details:   fmt.Sprintf("customerId: %s, attempts: %d", customerID, attempts),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewAccountNotFoundError(accountNumber string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAccountNotFound,
		Message:   "Bank account not found",
		Details:   fmt.Sprintf("accountNumber: %s", accountNumber),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAccountActivationFailedError creates a retryable activation error.
func NewAccountActivationFailedError(accountNumber string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAccountActivationFailed,
		Message:   "Bank account activation failed",
		Details:   fmt.Sprintf("accountNumber: %s", accountNumber),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("operation: %s", operation),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDocumentIndexingFailedError creates a retryable Elasticsearch indexing error.
func NewDocumentIndexingFailedError(index string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentIndexingFailed,
		Message:   "Document indexing failed",
		Details:   fmt.Sprintf("index: %s, error: %s", index, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to the error codes caught by
// boundary events in the onboarding process model.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidJobInput:           "INVALID_JOB_INPUT",
	ErrCodeExtractionFailed:          "EXTRACTION_FAILED",
	ErrCodeExtractionTimeout:         "EXTRACTION_FAILED",
	ErrCodeDocumentScanningFailed:    "DOCUMENT_SCANNING_FAILED",
	ErrCodeDocumentValidation:        "DOCUMENT_VALIDATION_FAILED",
	ErrCodeProfileValidationFailed:   "PROFILE_VALIDATION_FAILED",
	ErrCodeAccountProvisioningFailed: "ACCOUNT_PROVISIONING_FAILED",
	ErrCodeAccountNumberCollision:    "ACCOUNT_PROVISIONING_FAILED",
	ErrCodeAccountNotFound:           "ACCOUNT_NOT_FOUND",
	ErrCodeAccountActivationFailed:   "ACCOUNT_ACTIVATION_FAILED",
	ErrCodeDatabaseConnectionFailed:  "DATABASE_CONNECTION_FAILED",
	ErrCodeQueryTimeout:              "QUERY_TIMEOUT",
	ErrCodeDocumentIndexingFailed:    "DOCUMENT_INDEXING_FAILED",
	ErrCodeNotificationSendFailed:    "NOTIFICATION_SEND_FAILED",
	ErrCodeInternal:                  "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeExtractionFailed,
		ErrCodeAccountProvisioningFailed,
		ErrCodeAccountActivationFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeDocumentIndexingFailed,
		ErrCodeNotificationSendFailed:
		return 3

	case ErrCodeExtractionTimeout,
		ErrCodeQueryTimeout,
		ErrCodeAccountNumberCollision:
		return 2

	case "EXTERNAL_SERVICE_ERROR", "TIMEOUT_ERROR":
		return 1

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "EXTRACTION") || strings.Contains(codeStr, "SCANNING"):
		return "EXTRACTION"
	case strings.Contains(codeStr, "ACCOUNT"):
		return "ACCOUNT"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "INDEXING"):
		return "SEARCH"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

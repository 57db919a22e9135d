// internal/models/account.go
package models

import "time"

type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountBusiness AccountType = "business"
)

func (t AccountType) IsValid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountBusiness:
		return true
	}
	return false
}

type AccountStatus string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusClosed    AccountStatus = "closed"
)

// BankAccount is provisioned Pending with a zero balance.
type BankAccount struct {
	AccountNumber string        `json:"accountNumber"`
	AccountType   AccountType   `json:"accountType"`
	CustomerID    string        `json:"customerId"`
	Balance       float64       `json:"balance"`
	Status        AccountStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	LastModified  time.Time     `json:"lastModified"`
}

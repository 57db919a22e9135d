package activateaccount

import (
	"context"
	"testing"

	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/models"
	provisionaccount "onboarding-workers/internal/workers/onboarding/provision-account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Handler, *provisionaccount.MemoryStore, *provisionaccount.Provisioner) {
	log := logger.NewTestLogger(t)
	store := provisionaccount.NewMemoryStore()
	p := provisionaccount.NewProvisioner(store, 3, log)
	return NewHandler(LoadConfig(), p, log), store, p
}

func TestHandler_Execute_ActivatesPendingAccount(t *testing.T) {
	h, _, p := setup(t)
	ctx := context.Background()

	account, err := p.CreateAccount(ctx, "c-1", models.AccountChecking)
	require.NoError(t, err)

	out, err := h.Execute(ctx, &Input{AccountNumber: account.AccountNumber})
	require.NoError(t, err)
	assert.True(t, out.Activated)
	assert.Equal(t, models.AccountStatusActive, out.AccountStatus)
	assert.Equal(t, "c-1", out.BankAccount.CustomerID)
}

func TestHandler_Execute_AlreadyActive(t *testing.T) {
	h, store, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, models.BankAccount{AccountNumber: "1234561234", Status: models.AccountStatusActive}))

	out, err := h.Execute(ctx, &Input{AccountNumber: "1234561234"})
	require.NoError(t, err)
	assert.False(t, out.Activated)
	assert.Equal(t, models.AccountStatusActive, out.AccountStatus)
}

func TestHandler_Execute_Errors(t *testing.T) {
	h, store, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, models.BankAccount{AccountNumber: "9999991111", Status: models.AccountStatusClosed}))

	tests := []struct {
		name   string
		number string
		code   apperrors.ErrorCode
	}{
		{"blank number", " ", apperrors.ErrCodeInvalidJobInput},
		{"unknown account", "0000000000", apperrors.ErrCodeAccountNotFound},
		{"closed account", "9999991111", "BUSINESS_RULE_VIOLATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(ctx, &Input{AccountNumber: tt.number})
			assert.Nil(t, out)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.Normalize(err).Code)
		})
	}

	closed, err := store.Get(ctx, "9999991111")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusClosed, closed.Status)
}

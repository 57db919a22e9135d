package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
camunda:
  broker_address: localhost:26500
database:
  postgres:
    host: localhost
    database: onboarding
    user: onboarding
  redis:
    address: localhost:6379
extraction:
  base_url: http://extractor.local
  timeout: 10000
  cache_ttl: 600
  processors:
    passport: passport-proc
workers:
  process-customer-batch:
    enabled: true
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, baseYAML))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Accounts.Store)
	assert.Equal(t, "bank_accounts", cfg.Accounts.Table)
	assert.Equal(t, "checking", cfg.Onboarding.DefaultAccountType)
	assert.Equal(t, 3, cfg.Onboarding.AccountNumberAttempts)
	assert.True(t, cfg.Onboarding.ContactPlaceholders.Enabled)
	assert.Equal(t, "customer@example.com", cfg.Onboarding.ContactPlaceholders.Email)
	assert.Equal(t, "555-0123", cfg.Onboarding.ContactPlaceholders.Phone)
	assert.Equal(t, "us", cfg.Extraction.Location)
	assert.Equal(t, "passport-proc", cfg.Extraction.Processors["passport"])
	assert.Equal(t, "onboarding-documents", cfg.Database.Elasticsearch.DocumentIndex)
	assert.Equal(t, ":8080", cfg.Server.Address)

	w := cfg.Workers["process-customer-batch"]
	assert.True(t, w.Enabled)
	assert.Equal(t, 5, w.MaxJobsActive)
	assert.Equal(t, 30000, w.Timeout)
	assert.Equal(t, 3, w.MaxRetries)
}

func TestLoadFromFile_PlaceholdersCanBeDisabled(t *testing.T) {
	body := baseYAML + `
onboarding:
  contact_placeholders:
    enabled: false
`
	cfg, err := LoadFromFile(writeConfig(t, body))
	require.NoError(t, err)

	assert.False(t, cfg.Onboarding.ContactPlaceholders.Enabled)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	t.Setenv("EXTRACTION_TIMEOUT", "2500")
	t.Setenv("BANK_STATEMENT_PROCESSOR_ID", "bank-proc")

	cfg, err := LoadFromFile(writeConfig(t, baseYAML))
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Extraction.Timeout)
	assert.Equal(t, "bank-proc", cfg.Extraction.Processors["bank_statement"])
}

func TestLoadFromFile_ExpandsEnvReferences(t *testing.T) {
	t.Setenv("ONBOARDING_EXTRACTOR_URL", "http://expanded.local")
	body := `
camunda:
  broker_address: localhost:26500
accounts:
  store: memory
extraction:
  base_url: ${ONBOARDING_EXTRACTOR_URL}
`
	cfg, err := LoadFromFile(writeConfig(t, body))
	require.NoError(t, err)

	assert.Equal(t, "http://expanded.local", cfg.Extraction.BaseURL)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing broker",
			body:    "extraction:\n  base_url: http://x\naccounts:\n  store: memory\n",
			wantErr: "camunda.broker_address is required",
		},
		{
			name:    "unknown store",
			body:    "camunda:\n  broker_address: b\nextraction:\n  base_url: http://x\naccounts:\n  store: dynamo\n",
			wantErr: "accounts.store must be postgres or memory",
		},
		{
			name:    "postgres store without host",
			body:    "camunda:\n  broker_address: b\nextraction:\n  base_url: http://x\n",
			wantErr: "database.postgres.host is required",
		},
		{
			name:    "cache without redis",
			body:    "camunda:\n  broker_address: b\naccounts:\n  store: memory\nextraction:\n  base_url: http://x\n  cache_ttl: 60\n",
			wantErr: "database.redis.address is required",
		},
		{
			name:    "bad account type",
			body:    "camunda:\n  broker_address: b\naccounts:\n  store: memory\nextraction:\n  base_url: http://x\nonboarding:\n  default_account_type: brokerage\n",
			wantErr: "default_account_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetWorkerConfig_Fallback(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{
		"classify-document": {Enabled: false, MaxJobsActive: 2, Timeout: 1000},
	}}

	assert.False(t, IsWorkerEnabled(cfg, "classify-document"))
	assert.True(t, IsWorkerEnabled(cfg, "provision-bank-account"))

	fallback := GetWorkerConfig(cfg, "provision-bank-account")
	assert.True(t, fallback.Enabled)
	assert.Equal(t, 5, fallback.MaxJobsActive)

	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}

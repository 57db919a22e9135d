// internal/workers/onboarding/provision-account/postgres_store.go
package provisionaccount

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"onboarding-workers/internal/models"

	"github.com/lib/pq"
)

const accountColumns = "account_number, account_type, customer_id, balance, status, created_at, last_modified"

// PostgresStore keeps accounts in a single table whose primary key is the
// account number.
type PostgresStore struct {
	db    *sql.DB
	name  string
	table string
}

func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	return &PostgresStore{db: db, name: table, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the accounts table and its customer index if missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			account_number TEXT PRIMARY KEY,
			account_type   TEXT NOT NULL,
			customer_id    TEXT NOT NULL,
			balance        NUMERIC(18,2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
			status         TEXT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL,
			last_modified  TIMESTAMPTZ NOT NULL
		)`, s.table))
	if err != nil {
		return fmt.Errorf("create accounts table: %w", err)
	}

	index := pq.QuoteIdentifier(s.name + "_customer_id_idx")
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS %s ON %s (customer_id)`, index, s.table)); err != nil {
		return fmt.Errorf("create customer index: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, a models.BankAccount) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_number) DO NOTHING`, s.table, accountColumns),
		a.AccountNumber, a.AccountType, a.CustomerID, a.Balance, a.Status, a.CreatedAt, a.LastModified,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	if n == 0 {
		return ErrAccountExists
	}
	return nil
}

func (s *PostgresStore) Put(ctx context.Context, a models.BankAccount) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_number) DO UPDATE SET
			account_type = EXCLUDED.account_type,
			customer_id = EXCLUDED.customer_id,
			balance = EXCLUDED.balance,
			status = EXCLUDED.status,
			last_modified = EXCLUDED.last_modified`, s.table, accountColumns),
		a.AccountNumber, a.AccountType, a.CustomerID, a.Balance, a.Status, a.CreatedAt, a.LastModified,
	)
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, accountNumber string) (*models.BankAccount, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM %s WHERE account_number = $1`, accountColumns, s.table), accountNumber)

	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, accountNumber string, status models.AccountStatus, modified time.Time) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(
		`UPDATE %s SET status = $1, last_modified = $2 WHERE account_number = $3`, s.table),
		status, modified, accountNumber,
	)
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}
	if n == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (s *PostgresStore) ListByCustomer(ctx context.Context, customerID string) ([]models.BankAccount, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM %s WHERE customer_id = $1 ORDER BY created_at`, accountColumns, s.table), customerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.BankAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (*models.BankAccount, error) {
	var a models.BankAccount
	var accountType, status string
	if err := row.Scan(&a.AccountNumber, &accountType, &a.CustomerID, &a.Balance, &status, &a.CreatedAt, &a.LastModified); err != nil {
		return nil, err
	}
	a.AccountType = models.AccountType(accountType)
	a.Status = models.AccountStatus(status)
	return &a, nil
}

// internal/repository/deposit_repo.go
package repository

import (
	"context"

	"deposit-service/internal/domain"

	"github.com/shopspring/decimal"
)

// DepositRepository defines the interface for deposit data operations.
// It is pure storage access; business validation lives in the service layer.
type DepositRepository interface {
	// FindAll retrieves every deposit record, unordered.
	FindAll(ctx context.Context, q DBExecutor) ([]domain.Deposit, error)
	// FindByDepositNumber retrieves a deposit by its business key.
	// Returns util.ErrNotFound when no record matches.
	FindByDepositNumber(ctx context.Context, q DBExecutor, depositNumber string) (*domain.Deposit, error)
	// FindByAccountNumber retrieves all deposits owned by an account.
	FindByAccountNumber(ctx context.Context, q DBExecutor, accountNumber string) ([]domain.Deposit, error)
	// FindByCommissionGreaterThan retrieves all deposits whose commission
	// strictly exceeds the given threshold, across all accounts.
	FindByCommissionGreaterThan(ctx context.Context, q DBExecutor, threshold decimal.Decimal) ([]domain.Deposit, error)
	// CountByAccountNumber returns the number of deposits owned by an account.
	CountByAccountNumber(ctx context.Context, q DBExecutor, accountNumber string) (int64, error)
	// Save upserts a deposit keyed by its internal storage identity: insert
	// when the deposit has no ID yet, overwrite the full row otherwise.
	// Business-key duplication is the caller's responsibility to check.
	Save(ctx context.Context, q DBExecutor, deposit *domain.Deposit) error
	// Delete removes a deposit by its internal storage identity.
	Delete(ctx context.Context, q DBExecutor, deposit *domain.Deposit) error
}

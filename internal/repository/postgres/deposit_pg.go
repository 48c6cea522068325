// internal/repository/postgres/deposit_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"deposit-service/internal/domain"
	"deposit-service/internal/repository"
	"deposit-service/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const depositColumns = `id, deposit_number, account_number, dni, amount, type_account, status, commission, creation_date, modification_date`

// DepositRepository implements repository.DepositRepository for PostgreSQL.
type DepositRepository struct {
	// Methods receive a DBExecutor directly, so no connection is held here.
}

// NewDepositRepository creates a new DepositRepository.
func NewDepositRepository(db *sqlx.DB) repository.DepositRepository {
	return &DepositRepository{}
}

// FindAll retrieves every deposit record using the provided DBExecutor.
func (r *DepositRepository) FindAll(ctx context.Context, q repository.DBExecutor) ([]domain.Deposit, error) {
	deposits := []domain.Deposit{}
	query := `SELECT ` + depositColumns + ` FROM deposits`
	if err := q.SelectContext(ctx, &deposits, query); err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return deposits, nil
}

// FindByDepositNumber retrieves a deposit by its business key using the provided DBExecutor.
func (r *DepositRepository) FindByDepositNumber(ctx context.Context, q repository.DBExecutor, depositNumber string) (*domain.Deposit, error) {
	var deposit domain.Deposit
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE deposit_number = $1`
	err := q.GetContext(ctx, &deposit, query, depositNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deposit by number %s: %w", depositNumber, err)
	}
	return &deposit, nil
}

// FindByAccountNumber retrieves all deposits owned by an account using the provided DBExecutor.
func (r *DepositRepository) FindByAccountNumber(ctx context.Context, q repository.DBExecutor, accountNumber string) ([]domain.Deposit, error) {
	deposits := []domain.Deposit{}
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE account_number = $1`
	if err := q.SelectContext(ctx, &deposits, query, accountNumber); err != nil {
		return nil, fmt.Errorf("failed to list deposits for account %s: %w", accountNumber, err)
	}
	return deposits, nil
}

// FindByCommissionGreaterThan retrieves all deposits whose commission strictly
// exceeds the threshold, across all accounts.
func (r *DepositRepository) FindByCommissionGreaterThan(ctx context.Context, q repository.DBExecutor, threshold decimal.Decimal) ([]domain.Deposit, error) {
	deposits := []domain.Deposit{}
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE commission > $1`
	if err := q.SelectContext(ctx, &deposits, query, threshold); err != nil {
		return nil, fmt.Errorf("failed to list deposits with commission above %s: %w", threshold, err)
	}
	return deposits, nil
}

// CountByAccountNumber returns the number of deposits owned by an account.
func (r *DepositRepository) CountByAccountNumber(ctx context.Context, q repository.DBExecutor, accountNumber string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM deposits WHERE account_number = $1`
	if err := q.GetContext(ctx, &count, query, accountNumber); err != nil {
		return 0, fmt.Errorf("failed to count deposits for account %s: %w", accountNumber, err)
	}
	return count, nil
}

// Save upserts a deposit keyed by its internal storage identity.
func (r *DepositRepository) Save(ctx context.Context, q repository.DBExecutor, deposit *domain.Deposit) error {
	if deposit.ID == 0 {
		query := `INSERT INTO deposits (deposit_number, account_number, dni, amount, type_account, status, commission, creation_date, modification_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
		err := q.QueryRowContext(ctx, query,
			deposit.DepositNumber,
			deposit.AccountNumber,
			deposit.DNI,
			deposit.Amount,
			deposit.TypeAccount,
			deposit.Status,
			deposit.Commission,
			deposit.CreationDate,
			deposit.ModificationDate,
		).Scan(&deposit.ID)
		if err != nil {
			return fmt.Errorf("failed to create deposit: %w", err)
		}
		return nil
	}

	query := `UPDATE deposits
              SET deposit_number = $1, account_number = $2, dni = $3, amount = $4, type_account = $5, status = $6, commission = $7, creation_date = $8, modification_date = $9
              WHERE id = $10`
	result, err := q.ExecContext(ctx, query,
		deposit.DepositNumber,
		deposit.AccountNumber,
		deposit.DNI,
		deposit.Amount,
		deposit.TypeAccount,
		deposit.Status,
		deposit.Commission,
		deposit.CreationDate,
		deposit.ModificationDate,
		deposit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update deposit %d: %w", deposit.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating deposit %d: %w", deposit.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when updating deposit %d: %w", deposit.ID, util.ErrNotFound)
	}
	return nil
}

// Delete removes a deposit by its internal storage identity.
func (r *DepositRepository) Delete(ctx context.Context, q repository.DBExecutor, deposit *domain.Deposit) error {
	query := `DELETE FROM deposits WHERE id = $1`
	result, err := q.ExecContext(ctx, query, deposit.ID)
	if err != nil {
		return fmt.Errorf("failed to delete deposit %d: %w", deposit.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting deposit %d: %w", deposit.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when deleting deposit %d: %w", deposit.ID, util.ErrNotFound)
	}
	return nil
}

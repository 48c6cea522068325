// internal/service/deposit_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"deposit-service/internal/config"
	"deposit-service/internal/domain"
	"deposit-service/internal/event"
	"deposit-service/internal/metrics"
	"deposit-service/internal/repository"
	"deposit-service/internal/util"

	"github.com/shopspring/decimal"
)

// CreateDeposit is the command accepted by Save. All other deposit fields are
// populated by the service at creation time.
type CreateDeposit struct {
	DepositNumber string
	AccountNumber string
	DNI           string
	Amount        decimal.Decimal
}

// DepositService defines the interface for deposit business logic.
type DepositService interface {
	FindAll(ctx context.Context) ([]domain.Deposit, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) ([]domain.Deposit, error)
	// FindByNumber returns the matching deposit, or (nil, nil) when no
	// deposit carries the given number.
	FindByNumber(ctx context.Context, depositNumber string) (*domain.Deposit, error)
	CountByAccountNumber(ctx context.Context, accountNumber string) (int64, error)
	// Save creates a new deposit and publishes its creation event. When the
	// write succeeds but the publish fails, the stored deposit is returned
	// together with an error wrapping util.ErrEventNotPublished.
	Save(ctx context.Context, cmd CreateDeposit) (*domain.Deposit, error)
	Update(ctx context.Context, depositNumber string, data *domain.Deposit) (*domain.Deposit, error)
	Delete(ctx context.Context, depositNumber string) error
	// FindByCommission returns the deposits of an account carrying a
	// commission greater than zero.
	FindByCommission(ctx context.Context, accountNumber string) ([]domain.Deposit, error)
}

// depositService implements the DepositService interface.
type depositService struct {
	dbExecutor  repository.DBExecutor // For queries (e.g. *sqlx.DB)
	depositRepo repository.DepositRepository
	publisher   event.Publisher
	commission  config.CommissionConfig
}

// NewDepositService creates a new instance of DepositService.
func NewDepositService(
	dbExecutor repository.DBExecutor,
	depositRepo repository.DepositRepository,
	publisher event.Publisher,
	commission config.CommissionConfig,
) DepositService {
	return &depositService{
		dbExecutor:  dbExecutor,
		depositRepo: depositRepo,
		publisher:   publisher,
		commission:  commission,
	}
}

// FindAll returns every deposit record.
func (s *depositService) FindAll(ctx context.Context) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.FindAll(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("find all deposits: %w", err)
	}
	return deposits, nil
}

// FindByAccountNumber returns all deposits owned by an account.
func (s *depositService) FindByAccountNumber(ctx context.Context, accountNumber string) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.FindByAccountNumber(ctx, s.dbExecutor, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("find deposits for account %s: %w", accountNumber, err)
	}
	return deposits, nil
}

// FindByNumber returns the deposit carrying the given business key.
// Absence is not an error at this level: (nil, nil) is returned instead.
func (s *depositService) FindByNumber(ctx context.Context, depositNumber string) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.FindByDepositNumber(ctx, s.dbExecutor, depositNumber)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find deposit %s: %w", depositNumber, err)
	}
	return deposit, nil
}

// CountByAccountNumber returns the number of deposits owned by an account.
func (s *depositService) CountByAccountNumber(ctx context.Context, accountNumber string) (int64, error) {
	count, err := s.depositRepo.CountByAccountNumber(ctx, s.dbExecutor, accountNumber)
	if err != nil {
		return 0, fmt.Errorf("count deposits for account %s: %w", accountNumber, err)
	}
	return count, nil
}

// Save creates a new deposit. The existence check strictly precedes the
// write, and the write strictly precedes the publish; a creation event is
// never emitted for a duplicate or failed write. No lock is held across the
// check and the write.
func (s *depositService) Save(ctx context.Context, cmd CreateDeposit) (*domain.Deposit, error) {
	existing, err := s.FindByNumber(ctx, cmd.DepositNumber)
	if err != nil {
		return nil, fmt.Errorf("save deposit: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("save deposit %s: %w", cmd.DepositNumber, util.ErrDepositExists)
	}

	// Commission derives from the account's deposit count before this insertion.
	count, err := s.depositRepo.CountByAccountNumber(ctx, s.dbExecutor, cmd.AccountNumber)
	if err != nil {
		return nil, fmt.Errorf("save deposit %s: %w", cmd.DepositNumber, err)
	}
	commission := decimal.Zero
	if count > s.commission.FreeTransactionLimit {
		commission = s.commission.Amount
	}

	deposit := domain.NewDeposit(cmd.DepositNumber, cmd.AccountNumber, cmd.DNI, cmd.Amount, commission)
	if err := s.depositRepo.Save(ctx, s.dbExecutor, deposit); err != nil {
		return nil, fmt.Errorf("save deposit %s: %w", cmd.DepositNumber, err)
	}
	metrics.DepositsCreated.Inc()

	if err := s.publisher.PublishCreated(ctx, deposit); err != nil {
		// The deposit is durable at this point; the write is not undone.
		metrics.EventsFailed.Inc()
		return deposit, fmt.Errorf("deposit %s: %w: %v", deposit.DepositNumber, util.ErrEventNotPublished, err)
	}
	metrics.EventsPublished.Inc()

	return deposit, nil
}

// Update overwrites a stored deposit with incoming data, restoring the fields
// that are never mutable via this path: the identity fields, dni, amount and
// the creation date. The modification date is refreshed.
func (s *depositService) Update(ctx context.Context, depositNumber string, data *domain.Deposit) (*domain.Deposit, error) {
	original, err := s.FindByNumber(ctx, depositNumber)
	if err != nil {
		return nil, fmt.Errorf("update deposit: %w", err)
	}
	if original == nil {
		return nil, fmt.Errorf("update deposit %s: %w", depositNumber, util.ErrDepositNotFound)
	}

	data.ID = original.ID
	data.DepositNumber = original.DepositNumber
	data.DNI = original.DNI
	data.Amount = original.Amount
	data.CreationDate = original.CreationDate
	data.ModificationDate = time.Now().UTC()

	if err := s.depositRepo.Save(ctx, s.dbExecutor, data); err != nil {
		return nil, fmt.Errorf("update deposit %s: %w", depositNumber, err)
	}
	return data, nil
}

// Delete removes the deposit carrying the given business key.
func (s *depositService) Delete(ctx context.Context, depositNumber string) error {
	deposit, err := s.FindByNumber(ctx, depositNumber)
	if err != nil {
		return fmt.Errorf("delete deposit: %w", err)
	}
	if deposit == nil {
		return fmt.Errorf("delete deposit %s: %w", depositNumber, util.ErrDepositNotFound)
	}

	if err := s.depositRepo.Delete(ctx, s.dbExecutor, deposit); err != nil {
		return fmt.Errorf("delete deposit %s: %w", depositNumber, err)
	}
	return nil
}

// FindByCommission returns the deposits of an account with commission > 0.
// The store is scanned for charged deposits system-wide and then narrowed to
// the account here.
func (s *depositService) FindByCommission(ctx context.Context, accountNumber string) ([]domain.Deposit, error) {
	charged, err := s.depositRepo.FindByCommissionGreaterThan(ctx, s.dbExecutor, decimal.Zero)
	if err != nil {
		return nil, fmt.Errorf("find commissions for account %s: %w", accountNumber, err)
	}

	deposits := []domain.Deposit{}
	for _, d := range charged {
		if d.AccountNumber == accountNumber {
			deposits = append(deposits, d)
		}
	}
	return deposits, nil
}

// internal/domain/deposit.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// AccountType defines the classification assigned to a deposit's account.
type AccountType string

const (
	AccountTypeSaving AccountType = "SAVING"
)

// DepositStatus defines the status of a deposit record.
type DepositStatus string

const (
	DepositStatusActive DepositStatus = "ACTIVE"
)

// Deposit represents a deposit record for a bank account.
// DepositNumber is the business identity key; ID is the internal storage identity.
type Deposit struct {
	ID               int64           `db:"id" json:"id"`                               // Primary key, BIGSERIAL in DB
	DepositNumber    string          `db:"deposit_number" json:"deposit_number"`       // Business key, unique among live deposits
	AccountNumber    string          `db:"account_number" json:"account_number"`       // Owning account reference
	DNI              string          `db:"dni" json:"dni"`                             // Identity document of the account holder
	Amount           decimal.Decimal `db:"amount" json:"amount"`                       // Monetary amount, NUMERIC(20, 4) in DB
	TypeAccount      AccountType     `db:"type_account" json:"type_account"`           // Fixed classification assigned at creation
	Status           DepositStatus   `db:"status" json:"status"`                       // Fixed ACTIVE value assigned at creation
	Commission       decimal.Decimal `db:"commission" json:"commission"`               // Computed at creation, NUMERIC(20, 4) in DB
	CreationDate     time.Time       `db:"creation_date" json:"creation_date"`         // Set once at creation
	ModificationDate time.Time       `db:"modification_date" json:"modification_date"` // Refreshed on every update
}

// NewDeposit creates a new Deposit instance with the fixed creation-time fields populated.
func NewDeposit(depositNumber, accountNumber, dni string, amount, commission decimal.Decimal) *Deposit {
	now := time.Now().UTC()
	return &Deposit{
		DepositNumber:    depositNumber,
		AccountNumber:    accountNumber,
		DNI:              dni,
		Amount:           amount,
		TypeAccount:      AccountTypeSaving,
		Status:           DepositStatusActive,
		Commission:       commission,
		CreationDate:     now,
		ModificationDate: now,
	}
}

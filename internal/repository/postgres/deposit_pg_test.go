// internal/repository/postgres/deposit_pg_test.go
package postgres

import (
	"context"
	"testing"
	"time"

	"deposit-service/internal/domain"
	"deposit-service/internal/util"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func depositRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "deposit_number", "account_number", "dni", "amount",
		"type_account", "status", "commission", "creation_date", "modification_date",
	})
}

func TestFindByDepositNumber_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	created := time.Date(2023, 3, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE deposit_number = \$1`).
		WithArgs("D1").
		WillReturnRows(depositRows().AddRow(
			1, "D1", "ACC1", "X", "100.0000", "SAVING", "ACTIVE", "0.0000", created, created,
		))

	deposit, err := repo.FindByDepositNumber(context.Background(), db, "D1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), deposit.ID)
	assert.Equal(t, "D1", deposit.DepositNumber)
	assert.Equal(t, "ACC1", deposit.AccountNumber)
	assert.True(t, deposit.Amount.Equal(decimal.RequireFromString("100")))
	assert.True(t, deposit.Commission.Equal(decimal.Zero))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByDepositNumber_NoRowsMapsToNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE deposit_number = \$1`).
		WithArgs("D999").
		WillReturnRows(depositRows())

	deposit, err := repo.FindByDepositNumber(context.Background(), db, "D999")

	assert.Nil(t, deposit)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByAccountNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	created := time.Date(2023, 3, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE account_number = \$1`).
		WithArgs("ACC1").
		WillReturnRows(depositRows().
			AddRow(1, "D1", "ACC1", "X", "100.0000", "SAVING", "ACTIVE", "0.0000", created, created).
			AddRow(2, "D2", "ACC1", "X", "50.0000", "SAVING", "ACTIVE", "1.0000", created, created))

	deposits, err := repo.FindByAccountNumber(context.Background(), db, "ACC1")

	require.NoError(t, err)
	assert.Len(t, deposits, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByAccountNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deposits WHERE account_number = \$1`).
		WithArgs("ACC1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.CountByAccountNumber(context.Background(), db, "ACC1")

	require.NoError(t, err)
	assert.Equal(t, int64(6), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCommissionGreaterThan(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	created := time.Date(2023, 3, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE commission > \$1`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(depositRows().
			AddRow(2, "D2", "ACC1", "X", "50.0000", "SAVING", "ACTIVE", "1.0000", created, created))

	deposits, err := repo.FindByCommissionGreaterThan(context.Background(), db, decimal.Zero)

	require.NoError(t, err)
	assert.Len(t, deposits, 1)
	assert.True(t, deposits[0].Commission.Equal(decimal.RequireFromString("1.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_InsertAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	mock.ExpectQuery(`INSERT INTO deposits .+ RETURNING id`).
		WithArgs("D1", "ACC1", "X", sqlmock.AnyArg(), "SAVING", "ACTIVE",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	deposit := domain.NewDeposit("D1", "ACC1", "X", decimal.RequireFromString("100"), decimal.Zero)
	err := repo.Save(context.Background(), db, deposit)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deposit.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_UpdateOverwritesByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	mock.ExpectExec(`UPDATE deposits`).
		WithArgs("D1", "ACC2", "X", sqlmock.AnyArg(), "SAVING", "ACTIVE",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deposit := domain.NewDeposit("D1", "ACC2", "X", decimal.RequireFromString("100"), decimal.Zero)
	deposit.ID = 7
	err := repo.Save(context.Background(), db, deposit)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	mock.ExpectExec(`DELETE FROM deposits WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deposit := &domain.Deposit{ID: 7, DepositNumber: "D1"}
	err := repo.Delete(context.Background(), db, deposit)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepositRepository(db)

	mock.ExpectExec(`DELETE FROM deposits WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), db, &domain.Deposit{ID: 99})

	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

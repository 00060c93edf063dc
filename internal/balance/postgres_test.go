package balance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLStore(db), mock
}

func balanceColumns() []string {
	return []string{"id", "project_id", "from_user_id", "to_user_id", "amount", "base_amount", "interest_start_date", "updated_at"}
}

func TestSQLStoreFind(t *testing.T) {
	t.Run("locks and returns the matched row", func(t *testing.T) {
		store, mock := newMockStore(t)
		updatedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT (.+) FROM balances WHERE project_id = \$1 AND from_user_id = \$2 AND to_user_id = \$3 FOR UPDATE`).
			WithArgs(int64(1), int64(2), int64(3)).
			WillReturnRows(sqlmock.NewRows(balanceColumns()).
				AddRow(int64(10), int64(1), int64(2), int64(3), int64(500), int64(500), nil, updatedAt))

		b, err := store.Find(context.Background(), 1, 2, 3)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, int64(10), b.ID)
		assert.Equal(t, int64(500), b.Amount)
		assert.Nil(t, b.InterestStartDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil on no row", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT (.+) FROM balances`).
			WithArgs(int64(1), int64(2), int64(3)).
			WillReturnRows(sqlmock.NewRows(balanceColumns()))

		b, err := store.Find(context.Background(), 1, 2, 3)
		require.NoError(t, err)
		assert.Nil(t, b)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLStoreInsert(t *testing.T) {
	store, mock := newMockStore(t)
	updatedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	start := updatedAt.AddDate(0, 3, 0)

	mock.ExpectQuery(`INSERT INTO balances`).
		WithArgs(int64(1), int64(2), int64(3), int64(500), int64(500), &start).
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow(int64(7), updatedAt))

	b := &Balance{
		ProjectID:         1,
		FromUserID:        2,
		ToUserID:          3,
		Amount:            500,
		BaseAmount:        500,
		InterestStartDate: &start,
	}
	require.NoError(t, store.Insert(context.Background(), b))
	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, updatedAt, b.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreUpdateAmount(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE balances SET amount = \$2, base_amount = \$3`).
		WithArgs(int64(7), int64(800), int64(800)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.UpdateAmount(context.Background(), 7, 800, 800))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreUpdateAmountMissingRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE balances`).
		WithArgs(int64(7), int64(800), int64(800)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateAmount(context.Background(), 7, 800, 800)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreDelete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM balances WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreListByProject(t *testing.T) {
	store, mock := newMockStore(t)
	updatedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM balances WHERE project_id = \$1 ORDER BY id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(balanceColumns()).
			AddRow(int64(1), int64(1), int64(2), int64(1), int64(100), int64(100), nil, updatedAt).
			AddRow(int64(2), int64(1), int64(3), int64(1), int64(200), int64(200), nil, updatedAt))

	rows, err := store.ListByProject(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(100), rows[0].Amount)
	assert.Equal(t, int64(3), rows[1].FromUserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

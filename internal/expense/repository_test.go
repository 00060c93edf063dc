package expense

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepositoryDelete(t *testing.T) {
	t.Run("removes the expense", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`DELETE FROM expenses WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 7)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the sentinel when the row is already gone", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`DELETE FROM expenses WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 7)
		assert.ErrorIs(t, err, ErrExpenseNotFound)
	})
}

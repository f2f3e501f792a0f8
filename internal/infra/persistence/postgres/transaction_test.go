package postgres

import (
	"context"
	"testing"

	"eventhub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	clearToken := func(factory repository.RepositoryFactory) error {
		return factory.UserRepo().ClearPushToken(context.Background(), "ExponentPushToken[abc]")
	}

	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users" SET "expo_push_token"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewTransactionManager(db).Execute(context.Background(), clearToken)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the callback error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		errEventFull := errors.New("event full")
		err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
			return errEventFull
		})

		assert.ErrorIs(t, err, errEventFull)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection lost"))

		err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
			return nil
		})

		assert.ErrorContains(t, err, "connection lost")
	})
}

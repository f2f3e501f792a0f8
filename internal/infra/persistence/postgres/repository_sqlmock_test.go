package postgres

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestEventRepository_IncrementViewCount(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "increments existing event", rows: 1},
		{name: "missing event", rows: 0, wantErr: repository.ErrEventNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(`UPDATE "events" SET "view_count"=view_count \+ \$1 WHERE id = \$2`).
				WithArgs(1, eventID).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			err := NewEventRepository(db).IncrementViewCount(ctx, eventID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "removes the event row only", rows: 1},
		{name: "missing event", rows: 0, wantErr: repository.ErrEventNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			// Child rows are removed by ON DELETE CASCADE, so one statement is all that is sent.
			mock.ExpectExec(`DELETE FROM "events" WHERE id = \$1`).
				WithArgs(eventID).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			err := NewEventRepository(db).Delete(ctx, eventID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	tests := []struct {
		name    string
		mode    repository.LockMode
		pattern string
	}{
		{name: "for update", mode: repository.LockForUpdate, pattern: `SELECT \* FROM "events" WHERE id = \$1 .*FOR UPDATE`},
		{name: "for share", mode: repository.LockForShare, pattern: `SELECT \* FROM "events" WHERE id = \$1 .*FOR SHARE`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			rows := sqlmock.NewRows([]string{"id", "name", "capacity", "duration_seconds", "status", "view_count"}).
				AddRow(eventID.String(), "Go meetup", 2, int64(3600), "planned", int64(7))
			mock.ExpectQuery(tt.pattern).WillReturnRows(rows)

			event, err := NewEventRepository(db).LockByID(ctx, eventID, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, eventID, event.ID)
			assert.Equal(t, 2, event.Capacity)
			assert.Equal(t, time.Hour, event.Duration)
			assert.Equal(t, entity.EventStatusPlanned, event.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_LockByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewEventRepository(db).LockByID(context.Background(), uuid.New(), repository.LockForUpdate)

	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestParticipationRepository_CountByEvent(t *testing.T) {
	db, mock := newMockDB(t)
	eventID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "user_events" WHERE event_id = \$1`).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := NewParticipationRepository(db).CountByEvent(context.Background(), eventID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO "user_events"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_user_events_user_event"})

	err := NewParticipationRepository(db).Create(context.Background(), &entity.UserEvent{
		UserID:  uuid.New(),
		EventID: uuid.New(),
	})

	assert.ErrorIs(t, err, repository.ErrAlreadyJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_FindAuthentication(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "provider", "provider_user_id", "access_token"}

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name: "single link",
			rows: sqlmock.NewRows(columns).AddRow(uuid.NewString(), "KAKAO", "12345", "at"),
		},
		{
			name:    "no link",
			rows:    sqlmock.NewRows(columns),
			wantErr: repository.ErrAuthNotFound,
		},
		{
			name: "duplicate links",
			rows: sqlmock.NewRows(columns).
				AddRow(uuid.NewString(), "KAKAO", "12345", "at").
				AddRow(uuid.NewString(), "KAKAO", "12345", "at2"),
			wantErr: repository.ErrDuplicateAuthentication,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(`SELECT \* FROM "authentication_links" WHERE provider = \$1 AND provider_user_id = \$2 LIMIT`).
				WillReturnRows(tt.rows)

			link, err := NewAuthRepository(db).FindAuthentication(ctx, entity.ProviderTypeKakao, "12345")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, link)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "12345", link.ProviderUserID)
				assert.Equal(t, entity.ProviderTypeKakao, link.Provider)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuthRepository_CreateAuthentication_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO "authentication_links"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := NewAuthRepository(db).CreateAuthentication(context.Background(), &entity.AuthenticationLink{
		Provider:       entity.ProviderTypeKakao,
		ProviderUserID: "12345",
	})

	assert.ErrorIs(t, err, repository.ErrAuthAlreadyExists)
}

func TestUserRepository_ClearPushToken(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "users" SET "expo_push_token"=\$1,"updated_at"=\$2 WHERE expo_push_token = \$3`).
		WithArgs("", sqlmock.AnyArg(), "ExponentPushToken[abc]").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewUserRepository(db).ClearPushToken(context.Background(), "ExponentPushToken[abc]")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

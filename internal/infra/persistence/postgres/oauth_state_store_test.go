package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventhub/internal/domain/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oauthStateColumns = []string{"state", "return_url", "expires_at", "created_at"}

func newTestOAuthStateStore(t *testing.T, now time.Time) (*oauthStateStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	store := NewOAuthStateStore(db, slog.New(slog.NewTextHandler(io.Discard, nil))).(*oauthStateStore)
	store.now = func() time.Time { return now }

	return store, mock
}

func TestOAuthStateStore_Issue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store, mock := newTestOAuthStateStore(t, now)

	mock.ExpectExec(`INSERT INTO "oauth_states" \("state","return_url","expires_at","created_at"\)`).
		WithArgs(sqlmock.AnyArg(), "http://localhost:3000/after-login", now.Add(10*time.Minute), now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "oauth_states" WHERE expires_at < \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	state, err := store.Issue(ctx, "http://localhost:3000/after-login", 10*time.Minute)

	require.NoError(t, err)
	assert.Len(t, state, oauthStateBytes*2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOAuthStateStore_IssueSurvivesFailedSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store, mock := newTestOAuthStateStore(t, now)

	mock.ExpectExec(`INSERT INTO "oauth_states"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "oauth_states" WHERE expires_at < \$1`).WillReturnError(assert.AnError)

	state, err := store.Issue(ctx, "http://localhost:3000", time.Minute)

	require.NoError(t, err)
	assert.NotEmpty(t, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOAuthStateStore_Consume(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		want    string
		wantErr error
	}{
		{
			name: "valid state returns its url",
			rows: sqlmock.NewRows(oauthStateColumns).
				AddRow("abc", "http://localhost:3000/after-login", now.Add(time.Minute), now.Add(-time.Minute)),
			want: "http://localhost:3000/after-login",
		},
		{
			name: "expired state is rejected",
			rows: sqlmock.NewRows(oauthStateColumns).
				AddRow("abc", "http://localhost:3000/after-login", now.Add(-time.Second), now.Add(-10*time.Minute)),
			wantErr: service.ErrStateNotFound,
		},
		{
			name:    "unknown or replayed state",
			rows:    sqlmock.NewRows(oauthStateColumns),
			wantErr: service.ErrStateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newTestOAuthStateStore(t, now)
			mock.ExpectQuery(`DELETE FROM "oauth_states" WHERE state = \$1 RETURNING \*`).
				WithArgs("abc").
				WillReturnRows(tt.rows)

			got, err := store.Consume(ctx, "abc")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOAuthStateStore_ConsumeEmptyState(t *testing.T) {
	store, mock := newTestOAuthStateStore(t, time.Now())

	_, err := store.Consume(context.Background(), "")

	assert.ErrorIs(t, err, service.ErrStateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOAuthStateStore_ConsumeDatabaseError(t *testing.T) {
	store, mock := newTestOAuthStateStore(t, time.Now())
	mock.ExpectQuery(`DELETE FROM "oauth_states"`).WillReturnError(assert.AnError)

	_, err := store.Consume(context.Background(), "abc")

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrStateNotFound)
}

package repository

import (
	"context"
	"testing"
	"time"

	"matrimonial-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGetValid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)

	t.Run("Valid", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"token", "user_id", "expires_at", "created_at"}).
			AddRow("tok", "u1", now.Add(time.Hour), now)
		mock.ExpectQuery("SELECT token, user_id, expires_at, created_at").
			WithArgs("tok", pgxmock.AnyArg()).
			WillReturnRows(rows)

		session, err := repo.GetValid(context.Background(), "tok", now)

		require.NoError(t, err)
		assert.Equal(t, "u1", session.UserID)
	})

	t.Run("ExpiredOrMissing", func(t *testing.T) {
		// The query filters on expires_at > now, so an expired token looks
		// identical to an unknown one.
		mock.ExpectQuery("SELECT token, user_id, expires_at, created_at").
			WithArgs("stale", pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetValid(context.Background(), "stale", time.Now())

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

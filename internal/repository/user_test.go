package repository

import (
	"context"
	"testing"
	"time"

	"matrimonial-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateDuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_lower_idx"})

	user := &models.User{
		ID:        "u1",
		Email:     "a@x.com",
		Name:      "Alice",
		Interests: []string{},
		Photos:    []string{},
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err = repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	t.Run("Found", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{
			"id", "email", "password_hash", "name", "gender", "date_of_birth",
			"location", "bio", "interests", "photos", "push_token", "is_active",
			"created_at", "updated_at",
		}).AddRow(
			"u1", "a@x.com", "hash", "Alice", nil, nil,
			nil, nil, []string{"hiking"}, []string{}, nil, true,
			now, now,
		)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE lower").
			WithArgs("A@X.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "A@X.com")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, []string{"hiking"}, user.Interests)
		assert.Nil(t, user.Gender)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE lower").
			WithArgs("nobody@x.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "nobody@x.com")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateProfilePartial(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	// Only the provided fields appear in the SET clause, plus updated_at.
	name := "Bob"
	mock.ExpectExec(`UPDATE users SET name = \$1, updated_at = \$2 WHERE id = \$3`).
		WithArgs("Bob", pgxmock.AnyArg(), "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateProfile(context.Background(), "u1", &ProfilePatch{Name: &name})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateProfileMissingUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	bio := "hello"
	mock.ExpectExec("UPDATE users SET bio").
		WithArgs("hello", pgxmock.AnyArg(), "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateProfile(context.Background(), "ghost", &ProfilePatch{Bio: &bio})

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAppendPhoto(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectExec("UPDATE users SET photos = array_append").
		WithArgs("https://cdn.example.com/p.jpg", pgxmock.AnyArg(), "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.AppendPhoto(context.Background(), "u1", "https://cdn.example.com/p.jpg")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"matrimonial-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, password_hash, name, gender, date_of_birth, location, bio, interests, photos, push_token, is_active, created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Returns models.ErrAlreadyExists when the email
// is already registered (unique index on lower(email)).
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, interests, photos, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.Interests, user.Photos, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email already registered: %w", models.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

// List returns up to limit users in creation order. The cap applies to the
// scan, before any caller-side filtering.
func (r *UserRepository) List(ctx context.Context, limit int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// ProfilePatch carries the optional profile fields for a partial update.
// Nil fields are left untouched.
type ProfilePatch struct {
	Name        *string   `json:"name"`
	Gender      *string   `json:"gender"`
	DateOfBirth *string   `json:"date_of_birth"`
	Location    *string   `json:"location"`
	Bio         *string   `json:"bio"`
	Interests   *[]string `json:"interests"`
	Photos      *[]string `json:"photos"`
}

// IsEmpty reports whether the patch contains no fields
func (p *ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Gender == nil && p.DateOfBirth == nil &&
		p.Location == nil && p.Bio == nil && p.Interests == nil && p.Photos == nil
}

// UpdateProfile applies a partial profile update and bumps updated_at.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, patch *ProfilePatch) error {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Gender != nil {
		add("gender", *patch.Gender)
	}
	if patch.DateOfBirth != nil {
		add("date_of_birth", *patch.DateOfBirth)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Bio != nil {
		add("bio", *patch.Bio)
	}
	if patch.Interests != nil {
		add("interests", *patch.Interests)
	}
	if patch.Photos != nil {
		add("photos", *patch.Photos)
	}
	add("updated_at", time.Now())

	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	return nil
}

// AppendPhoto appends a photo URL to the user's photo list
func (r *UserRepository) AppendPhoto(ctx context.Context, userID, url string) error {
	query := `UPDATE users SET photos = array_append(photos, $1), updated_at = $2 WHERE id = $3`
	result, err := r.db.Exec(ctx, query, url, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to append photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	return nil
}

// UpdatePushToken updates the push token for a user
func (r *UserRepository) UpdatePushToken(ctx context.Context, userID string, pushToken *string) error {
	query := `UPDATE users SET push_token = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.Exec(ctx, query, pushToken, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update push token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.Gender, &user.DateOfBirth, &user.Location, &user.Bio,
		&user.Interests, &user.Photos, &user.PushToken, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

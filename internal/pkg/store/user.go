package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/google/uuid"
)

var userColumns = []string{
	"id", "email", "full_name", "password_hash", "password_salt",
	"created_at", "updated_at",
}

func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns("email", "full_name", "password_hash", "password_salt").
		Values(user.Email, user.FullName, user.UserPassword.Hash, user.UserPassword.Salt).
		Suffix("RETURNING id, created_at, updated_at")

	type returned struct {
		ID        uuid.UUID `db:"id"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}

	var ret returned
	if err := s.pool.Getx(ctx, &ret, query); err != nil {
		return wrapErr(err)
	}

	user.ID = ret.ID
	user.CreatedAt = ret.CreatedAt
	user.UpdatedAt = ret.UpdatedAt

	return nil
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"email": email})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": id})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

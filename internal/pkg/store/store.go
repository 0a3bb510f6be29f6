package store

import (
	"context"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store/xpgx"
	"github.com/google/uuid"
)

type Pool = xpgx.Pool

type Store interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	InsertSeason(ctx context.Context, season *domain.Season) (*domain.Season, error)
	ListSeasons(ctx context.Context, userID uuid.UUID) ([]*domain.Season, error)
	GetSeason(ctx context.Context, userID, id uuid.UUID) (*domain.Season, error)
	GetSeasonByNo(ctx context.Context, userID uuid.UUID, seasonNo int) (*domain.Season, error)
	UpdateSeason(ctx context.Context, season *domain.Season) error
	DeleteSeason(ctx context.Context, userID, id uuid.UUID) error

	InsertExpenseItem(ctx context.Context, item *domain.ExpenseItem) (*domain.ExpenseItem, error)
	ListExpenseItems(ctx context.Context, opts ListExpenseItemsOpts) ([]*domain.ExpenseItem, error)
	GetExpenseItem(ctx context.Context, userID, id uuid.UUID) (*domain.ExpenseItem, error)
	UpdateExpenseItem(ctx context.Context, item *domain.ExpenseItem) error
	DeleteExpenseItem(ctx context.Context, userID, id uuid.UUID) error
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}

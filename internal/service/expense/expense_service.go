package expense

import (
	"context"
	"fmt"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/logger"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store"
	"github.com/google/uuid"
)

// Service persists expense entries. Entry-time validation is strict: a line
// that fails its validity predicate is rejected with a 400, unlike report
// aggregation which silently drops invalid historical rows.
type Service struct {
	store store.Store
}

func NewExpenseService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) CreateEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*domain.ExpenseItem, error) {
	if _, err := svc.store.GetSeason(ctx, userID, req.SeasonID); err != nil {
		return nil, fmt.Errorf("GetSeason: %w", err)
	}

	item, err := buildItem(userID, req)
	if err != nil {
		return nil, err
	}

	inserted, err := svc.store.InsertExpenseItem(ctx, item)
	if err != nil {
		logger.Errorf(ctx, "InsertExpenseItem: %s", err.Error())
		return nil, fmt.Errorf("InsertExpenseItem: %w", err)
	}

	return inserted, nil
}

func (svc *Service) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateExpenseRequest) (*domain.ExpenseItem, error) {
	if _, err := svc.store.GetExpenseItem(ctx, userID, id); err != nil {
		return nil, err
	}
	if _, err := svc.store.GetSeason(ctx, userID, req.SeasonID); err != nil {
		return nil, fmt.Errorf("GetSeason: %w", err)
	}

	item, err := buildItem(userID, req)
	if err != nil {
		return nil, err
	}
	item.ID = id

	if err := svc.store.UpdateExpenseItem(ctx, item); err != nil {
		logger.Errorf(ctx, "UpdateExpenseItem: %s", err.Error())
		return nil, fmt.Errorf("UpdateExpenseItem: %w", err)
	}

	return svc.store.GetExpenseItem(ctx, userID, id)
}

func (svc *Service) List(ctx context.Context, userID uuid.UUID, seasonID *uuid.UUID) ([]*domain.ExpenseItem, error) {
	opts := store.ListExpenseItemsOpts{
		UserID: userID,
		Sections: []domain.Section{
			domain.SectionCashDetail,
			domain.SectionCashLaborTotal,
			domain.SectionNonCashLaborTotal,
			domain.SectionToolDetail,
			domain.SectionNonCashExtra,
		},
	}
	if seasonID != nil {
		if _, err := svc.store.GetSeason(ctx, userID, *seasonID); err != nil {
			return nil, fmt.Errorf("GetSeason: %w", err)
		}
		opts.SeasonIDs = []uuid.UUID{*seasonID}
	}

	return svc.store.ListExpenseItems(ctx, opts)
}

func (svc *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return svc.store.DeleteExpenseItem(ctx, userID, id)
}

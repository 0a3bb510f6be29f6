package receipt

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/logger"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service manages harvest receipts, stored as production-section rows.
type Service struct {
	store store.Store
}

func NewReceiptService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateReceiptRequest) (*domain.ExpenseItem, error) {
	if _, err := svc.store.GetSeason(ctx, userID, req.SeasonID); err != nil {
		return nil, fmt.Errorf("GetSeason: %w", err)
	}

	qty, ok := utils.ParseDecimal(req.Quantity)
	if !ok || !qty.IsPositive() {
		return nil, constants.NewCodedError(http.StatusBadRequest, "receipt quantity must be positive")
	}
	price, ok := utils.ParseDecimal(req.UnitPrice)
	if !ok || price.IsNegative() {
		return nil, constants.NewCodedError(http.StatusBadRequest, "receipt unit price must not be negative")
	}

	item := &domain.ExpenseItem{
		UserID:    userID,
		SeasonID:  req.SeasonID,
		Section:   domain.SectionProduction,
		Label:     req.Crop,
		Quantity:  decimal.NewNullDecimal(qty),
		UnitPrice: decimal.NewNullDecimal(price),
		Amount:    qty.Mul(price),
	}
	if req.Variety != "" {
		item.Name = &req.Variety
	}
	if req.Unit != "" {
		item.Unit = &req.Unit
	}

	inserted, err := svc.store.InsertExpenseItem(ctx, item)
	if err != nil {
		logger.Errorf(ctx, "InsertExpenseItem: %s", err.Error())
		return nil, fmt.Errorf("InsertExpenseItem: %w", err)
	}

	return inserted, nil
}

func (svc *Service) List(ctx context.Context, userID uuid.UUID, seasonID *uuid.UUID) ([]*domain.ExpenseItem, error) {
	opts := store.ListExpenseItemsOpts{
		UserID:   userID,
		Sections: []domain.Section{domain.SectionProduction},
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
	item, err := svc.store.GetExpenseItem(ctx, userID, id)
	if err != nil {
		return err
	}
	if item.Section != domain.SectionProduction {
		return constants.ErrDBNotFound
	}

	return svc.store.DeleteExpenseItem(ctx, userID, id)
}

package season

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/logger"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type Service struct {
	store store.Store
}

func NewSeasonService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSeasonRequest) (*domain.Season, error) {
	season, err := seasonFromRequest(userID, req.SeasonNo, req.StartDate, req.EndDate, req.LandAreaHectares)
	if err != nil {
		return nil, err
	}

	if _, err := svc.store.GetSeasonByNo(ctx, userID, req.SeasonNo); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrSeasonNoTaken
		}
		return nil, err
	}

	inserted, err := svc.store.InsertSeason(ctx, season)
	if err != nil {
		logger.Errorf(ctx, "InsertSeason: %s", err.Error())
		return nil, fmt.Errorf("InsertSeason: %w", err)
	}

	return inserted, nil
}

func (svc *Service) List(ctx context.Context, userID uuid.UUID) ([]*domain.Season, error) {
	return svc.store.ListSeasons(ctx, userID)
}

func (svc *Service) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Season, error) {
	return svc.store.GetSeason(ctx, userID, id)
}

func (svc *Service) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateSeasonRequest) (*domain.Season, error) {
	current, err := svc.store.GetSeason(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if current.SeasonNo != req.SeasonNo {
		if _, err := svc.store.GetSeasonByNo(ctx, userID, req.SeasonNo); !errors.Is(err, constants.ErrDBNotFound) {
			if err == nil {
				return nil, constants.ErrSeasonNoTaken
			}
			return nil, err
		}
	}

	season, err := seasonFromRequest(userID, req.SeasonNo, req.StartDate, req.EndDate, req.LandAreaHectares)
	if err != nil {
		return nil, err
	}
	season.ID = id

	if err := svc.store.UpdateSeason(ctx, season); err != nil {
		logger.Errorf(ctx, "UpdateSeason: %s", err.Error())
		return nil, fmt.Errorf("UpdateSeason: %w", err)
	}

	return svc.store.GetSeason(ctx, userID, id)
}

func (svc *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return svc.store.DeleteSeason(ctx, userID, id)
}

func seasonFromRequest(userID uuid.UUID, seasonNo int, startDate, endDate, landArea string) (*domain.Season, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, constants.NewCodedError(http.StatusBadRequest, "invalid start_date")
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, constants.NewCodedError(http.StatusBadRequest, "invalid end_date")
	}

	if end.Before(start) {
		return nil, constants.NewCodedError(http.StatusBadRequest, "end_date before start_date")
	}

	area, ok := utils.ParseDecimal(landArea)
	if !ok || !area.IsPositive() {
		area = decimal.NewFromInt(1)
	}

	return &domain.Season{
		UserID:           userID,
		SeasonNo:         seasonNo,
		StartDate:        start,
		EndDate:          end,
		LandAreaHectares: area,
	}, nil
}

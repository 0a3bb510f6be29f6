package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/google/uuid"
)

var seasonColumns = []string{
	"id", "user_id", "season_no", "start_date", "end_date",
	"land_area_hectares", "created_at", "updated_at",
}

func (s *store) InsertSeason(ctx context.Context, season *domain.Season) (*domain.Season, error) {
	query := builder().Insert(tableSeasons).
		Columns("user_id", "season_no", "start_date", "end_date", "land_area_hectares").
		Values(season.UserID, season.SeasonNo, season.StartDate, season.EndDate, season.LandAreaHectares).
		Suffix("RETURNING " + joinColumns(seasonColumns))

	var selected domain.Season
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListSeasons(ctx context.Context, userID uuid.UUID) ([]*domain.Season, error) {
	query := builder().Select(seasonColumns...).
		From(tableSeasons).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("season_no")

	var selected []*domain.Season
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetSeason(ctx context.Context, userID, id uuid.UUID) (*domain.Season, error) {
	query := builder().Select(seasonColumns...).
		From(tableSeasons).
		Where(sq.Eq{"id": id, "user_id": userID})

	var selected domain.Season
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetSeasonByNo(ctx context.Context, userID uuid.UUID, seasonNo int) (*domain.Season, error) {
	query := builder().Select(seasonColumns...).
		From(tableSeasons).
		Where(sq.Eq{"user_id": userID, "season_no": seasonNo})

	var selected domain.Season
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) UpdateSeason(ctx context.Context, season *domain.Season) error {
	query := builder().Update(tableSeasons).
		Set("season_no", season.SeasonNo).
		Set("start_date", season.StartDate).
		Set("end_date", season.EndDate).
		Set("land_area_hectares", season.LandAreaHectares).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": season.ID, "user_id": season.UserID})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func (s *store) DeleteSeason(ctx context.Context, userID, id uuid.UUID) error {
	query := builder().Delete(tableSeasons).
		Where(sq.Eq{"id": id, "user_id": userID})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

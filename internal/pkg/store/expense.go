package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/google/uuid"
)

var expenseItemColumns = []string{
	"id", "user_id", "season_id", "section", "label", "name",
	"quantity", "unit", "unit_price", "amount",
	"people_count", "days", "daily_wage", "hours_per_day",
	"contract_price", "prevailing_wage", "useful_life_years", "salvage_value",
	"created_at", "updated_at",
}

// ListExpenseItemsOpts filters the user's rows. A nil SeasonIDs means no
// season filter; an empty non-nil slice must not become an empty IN clause
// (pgx rejects it), so it is defused with the impossible uuid.Nil id and the
// query legitimately returns zero rows.
type ListExpenseItemsOpts struct {
	UserID    uuid.UUID
	SeasonIDs []uuid.UUID
	Sections  []domain.Section
}

func (o ListExpenseItemsOpts) seasonIDs() []uuid.UUID {
	if o.SeasonIDs != nil && len(o.SeasonIDs) == 0 {
		return []uuid.UUID{uuid.Nil}
	}
	return o.SeasonIDs
}

func (s *store) InsertExpenseItem(ctx context.Context, item *domain.ExpenseItem) (*domain.ExpenseItem, error) {
	query := builder().Insert(tableExpenseItems).
		Columns("user_id", "season_id", "section", "label", "name",
			"quantity", "unit", "unit_price", "amount",
			"people_count", "days", "daily_wage", "hours_per_day",
			"contract_price", "prevailing_wage", "useful_life_years", "salvage_value").
		Values(item.UserID, item.SeasonID, item.Section, item.Label, item.Name,
			item.Quantity, item.Unit, item.UnitPrice, item.Amount,
			item.PeopleCount, item.Days, item.DailyWage, item.HoursPerDay,
			item.ContractPrice, item.PrevailingWage, item.UsefulLifeYears, item.SalvageValue).
		Suffix("RETURNING " + joinColumns(expenseItemColumns))

	var selected domain.ExpenseItem
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListExpenseItems(ctx context.Context, opts ListExpenseItemsOpts) ([]*domain.ExpenseItem, error) {
	query := builder().Select(expenseItemColumns...).
		From(tableExpenseItems).
		Where(sq.Eq{"user_id": opts.UserID}).
		OrderBy("created_at, id")

	if ids := opts.seasonIDs(); ids != nil {
		query = query.Where(sq.Eq{"season_id": ids})
	}
	if len(opts.Sections) > 0 {
		query = query.Where(sq.Eq{"section": opts.Sections})
	}

	var selected []*domain.ExpenseItem
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetExpenseItem(ctx context.Context, userID, id uuid.UUID) (*domain.ExpenseItem, error) {
	query := builder().Select(expenseItemColumns...).
		From(tableExpenseItems).
		Where(sq.Eq{"id": id, "user_id": userID})

	var selected domain.ExpenseItem
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) UpdateExpenseItem(ctx context.Context, item *domain.ExpenseItem) error {
	query := builder().Update(tableExpenseItems).
		Set("section", item.Section).
		Set("label", item.Label).
		Set("name", item.Name).
		Set("quantity", item.Quantity).
		Set("unit", item.Unit).
		Set("unit_price", item.UnitPrice).
		Set("amount", item.Amount).
		Set("people_count", item.PeopleCount).
		Set("days", item.Days).
		Set("daily_wage", item.DailyWage).
		Set("hours_per_day", item.HoursPerDay).
		Set("contract_price", item.ContractPrice).
		Set("prevailing_wage", item.PrevailingWage).
		Set("useful_life_years", item.UsefulLifeYears).
		Set("salvage_value", item.SalvageValue).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": item.ID, "user_id": item.UserID})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func (s *store) DeleteExpenseItem(ctx context.Context, userID, id uuid.UUID) error {
	query := builder().Delete(tableExpenseItems).
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

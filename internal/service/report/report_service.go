package report

import (
	"context"
	"fmt"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/logger"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewReportService(store store.Store) *Service {
	return &Service{store: store}
}

// Filter restricts the dataset to one season, or to every season whose date
// range touches Year. LandFactor defaults to 1; StandardDailyWage is carried
// through for reference only.
type Filter struct {
	SeasonID          *uuid.UUID
	Year              *int
	LandFactor        decimal.Decimal
	StandardDailyWage *decimal.Decimal
}

// BuildDataset fetches the user's source rows and runs the normalization,
// aggregation and land-area scaling pipeline over them. Pure given the same
// rows and factor: building twice yields structurally identical output.
func (svc *Service) BuildDataset(ctx context.Context, userID uuid.UUID, filter Filter) (*domain.ReportDataset, error) {
	seasonIDs, err := svc.resolveSeasonIDs(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	factor := filter.LandFactor
	if !factor.IsPositive() {
		factor = one
	}

	var production, cash, labor, tools, extras []*domain.ExpenseItem

	eg, egCtx := errgroup.WithContext(ctx)
	fetch := func(dest *[]*domain.ExpenseItem, sections ...domain.Section) func() error {
		return func() error {
			rows, err := svc.store.ListExpenseItems(egCtx, store.ListExpenseItemsOpts{
				UserID:    userID,
				SeasonIDs: seasonIDs,
				Sections:  sections,
			})
			if err != nil {
				return fmt.Errorf("ListExpenseItems: %w", err)
			}
			*dest = rows
			return nil
		}
	}

	eg.Go(fetch(&production, domain.SectionProduction))
	eg.Go(fetch(&cash, domain.SectionCashDetail, domain.SectionCashLaborTotal))
	eg.Go(fetch(&labor, domain.SectionNonCashLaborTotal))
	eg.Go(fetch(&tools, domain.SectionToolDetail))
	eg.Go(fetch(&extras, domain.SectionNonCashExtra))
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ds := &domain.ReportDataset{StandardDailyWage: filter.StandardDailyWage}

	ds.Production = svc.buildProduction(production, factor, ds)
	ds.CashByCategory = svc.buildCash(cash, factor, ds)
	ds.Labor = svc.buildLabor(labor, factor, ds)
	ds.Tools = svc.buildTools(tools, factor, ds)
	ds.Extras = svc.buildExtras(extras, factor, ds)

	ds.TotalReceipts = sumAmounts(ds.Production)
	ds.TotalCash = sumAmounts(ds.CashByCategory)
	ds.TotalLabor = sumAmounts(ds.Labor)
	ds.TotalTools = sumAmounts(ds.Tools)
	ds.TotalExtras = sumAmounts(ds.Extras)
	ds.TotalNonCash = ds.TotalLabor.Add(ds.TotalTools).Add(ds.TotalExtras)
	ds.TotalCost = ds.TotalCash.Add(ds.TotalNonCash)

	if ds.SkippedRows > 0 {
		logger.Debugf(ctx, "report: skipped %d invalid rows for user %s", ds.SkippedRows, userID)
	}

	return ds, nil
}

// resolveSeasonIDs turns the filter into an explicit season-id set. nil means
// no filter; an empty set stays empty and the store defuses it with an
// impossible id rather than issuing an empty IN clause.
func (svc *Service) resolveSeasonIDs(ctx context.Context, userID uuid.UUID, filter Filter) ([]uuid.UUID, error) {
	if filter.SeasonID != nil {
		// ownership check before aggregating anything
		if _, err := svc.store.GetSeason(ctx, userID, *filter.SeasonID); err != nil {
			return nil, fmt.Errorf("GetSeason: %w", err)
		}
		return []uuid.UUID{*filter.SeasonID}, nil
	}

	if filter.Year == nil {
		return nil, nil
	}

	seasons, err := svc.store.ListSeasons(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ListSeasons: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(seasons))
	for _, season := range seasons {
		if season.CoversYear(*filter.Year) {
			ids = append(ids, season.ID)
		}
	}

	return ids, nil
}

func (svc *Service) buildProduction(items []*domain.ExpenseItem, factor decimal.Decimal, ds *domain.ReportDataset) []domain.ReportRow {
	agg := newAggregator()
	for _, item := range items {
		row, ok := normalizeRow(item)
		if !ok {
			ds.SkippedRows++
			continue
		}
		agg.add(scaleRow(row, factor))
	}
	return agg.rows()
}

// buildCash aggregates the cash detail; cash-paid external labor folds into
// the nominal map under the synthetic labor_outside key, so it shows up as a
// cash cost line rather than a labor row.
func (svc *Service) buildCash(items []*domain.ExpenseItem, factor decimal.Decimal, ds *domain.ReportDataset) []domain.ReportRow {
	agg := newAggregator()
	for _, item := range items {
		row, ok := normalizeRow(item)
		if !ok {
			ds.SkippedRows++
			continue
		}
		if item.Section == domain.SectionCashLaborTotal {
			row = canonicalRow{label: domain.LabelLaborOutside, amount: row.amount}
		}
		agg.add(scaleRow(row, factor))
	}
	return agg.rows()
}

// buildLabor folds all in-family labor into one synthetic row; the per-stage
// breakdown only exists in the entry form, not in the report.
func (svc *Service) buildLabor(items []*domain.ExpenseItem, factor decimal.Decimal, ds *domain.ReportDataset) []domain.ReportRow {
	total := decimal.Zero
	seen := false
	for _, item := range items {
		row, ok := normalizeRow(item)
		if !ok {
			ds.SkippedRows++
			continue
		}
		seen = true
		total = total.Add(row.amount)
	}
	if !seen {
		return nil
	}

	total = total.Mul(factor)
	return []domain.ReportRow{{
		Label:     domain.LabelLaborFamily,
		UnitPrice: &total,
		Amount:    total,
	}}
}

// buildTools keeps tools as individual rows: quantity scaled, purchase price
// unscaled, no amortization over useful life.
func (svc *Service) buildTools(items []*domain.ExpenseItem, factor decimal.Decimal, ds *domain.ReportDataset) []domain.ReportRow {
	rows := make([]domain.ReportRow, 0, len(items))
	for _, item := range items {
		row, ok := normalizeRow(item)
		if !ok {
			ds.SkippedRows++
			continue
		}
		row = scaleRow(row, factor)

		out := domain.ReportRow{
			Label:  row.label,
			Name:   row.name,
			Unit:   row.unit,
			Amount: row.amount,
		}
		if row.qty != nil {
			qty := *row.qty
			out.Quantity = &qty
		}
		if row.unitPrice != nil {
			price := *row.unitPrice
			out.UnitPrice = &price
		}
		rows = append(rows, out)
	}
	return rows
}

func (svc *Service) buildExtras(items []*domain.ExpenseItem, factor decimal.Decimal, ds *domain.ReportDataset) []domain.ReportRow {
	agg := newAggregator()
	for _, item := range items {
		row, ok := normalizeRow(item)
		if !ok {
			ds.SkippedRows++
			continue
		}
		agg.add(scaleRow(row, factor))
	}
	return agg.rows()
}

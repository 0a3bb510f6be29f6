package report

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	seasons []*domain.Season
	items   []*domain.ExpenseItem

	mu       sync.Mutex
	listOpts []store.ListExpenseItemsOpts
}

func (f *fakeStore) GetSeason(_ context.Context, userID, id uuid.UUID) (*domain.Season, error) {
	for _, s := range f.seasons {
		if s.ID == id && s.UserID == userID {
			return s, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) ListSeasons(_ context.Context, userID uuid.UUID) ([]*domain.Season, error) {
	var out []*domain.Season
	for _, s := range f.seasons {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) ListExpenseItems(_ context.Context, opts store.ListExpenseItemsOpts) ([]*domain.ExpenseItem, error) {
	f.mu.Lock()
	f.listOpts = append(f.listOpts, opts)
	f.mu.Unlock()

	var out []*domain.ExpenseItem
	for _, item := range f.items {
		if item.UserID != opts.UserID {
			continue
		}
		if opts.SeasonIDs != nil && !containsID(opts.SeasonIDs, item.SeasonID) {
			continue
		}
		if len(opts.Sections) > 0 && !containsSection(opts.Sections, item.Section) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func containsSection(sections []domain.Section, s domain.Section) bool {
	for _, v := range sections {
		if v == s {
			return true
		}
	}
	return false
}

var (
	testUser   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testSeason = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func strPtr(s string) *string { return &s }

func newFakeStore(items ...*domain.ExpenseItem) *fakeStore {
	for _, item := range items {
		item.UserID = testUser
		item.SeasonID = testSeason
	}
	return &fakeStore{
		seasons: []*domain.Season{{
			ID:               testSeason,
			UserID:           testUser,
			SeasonNo:         1,
			StartDate:        time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			LandAreaHectares: dec("1"),
		}},
		items: items,
	}
}

func cashRow(label, name string, qty, price string) *domain.ExpenseItem {
	item := &domain.ExpenseItem{
		Section:   domain.SectionCashDetail,
		Label:     label,
		Quantity:  nd(qty),
		UnitPrice: nd(price),
		Amount:    dec(qty).Mul(dec(price)),
	}
	if name != "" {
		item.Name = &name
	}
	return item
}

func TestBuildDataset_GroupsWeightedAveragePrice(t *testing.T) {
	st := newFakeStore(
		cashRow("fertilizer", "Urea", "100", "6000"),
		cashRow("fertilizer", "Urea", "50", "6000"),
	)

	ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{})
	require.NoError(t, err)

	require.Len(t, ds.CashByCategory, 1)
	row := ds.CashByCategory[0]
	assert.Equal(t, "fertilizer", row.Label)
	assert.Equal(t, "Urea", row.Name)
	require.NotNil(t, row.Quantity)
	assert.True(t, row.Quantity.Equal(dec("150")), "qty = %s", row.Quantity)
	assert.True(t, row.Amount.Equal(dec("900000")), "amount = %s", row.Amount)
	require.NotNil(t, row.UnitPrice)
	assert.True(t, row.UnitPrice.Equal(dec("6000")), "unit price = %s", row.UnitPrice)
}

func TestBuildDataset_MixedUnitsSuppressUnit(t *testing.T) {
	ml, liter := "ml", "liter"
	a := cashRow("insecticide", "", "200", "50")
	a.Unit = &ml
	b := cashRow("insecticide", "", "2", "40000")
	b.Unit = &liter

	ds, err := NewReportService(newFakeStore(a, b)).BuildDataset(context.Background(), testUser, Filter{})
	require.NoError(t, err)

	require.Len(t, ds.CashByCategory, 1)
	assert.Nil(t, ds.CashByCategory[0].Unit, "ambiguous units must not pick a representative")
}

func TestBuildDataset_CashExtraScalesAsFlatNominal(t *testing.T) {
	st := newFakeStore(&domain.ExpenseItem{
		Section: domain.SectionCashDetail,
		Label:   string(domain.ExtraTax),
		Amount:  dec("150000"),
	})

	ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{LandFactor: dec("1.5")})
	require.NoError(t, err)

	assert.True(t, ds.TotalCash.Equal(dec("225000")), "total cash = %s", ds.TotalCash)
	require.Len(t, ds.CashByCategory, 1)
	row := ds.CashByCategory[0]
	assert.Nil(t, row.Quantity)
	assert.Nil(t, row.Unit)
	require.NotNil(t, row.UnitPrice)
	assert.True(t, row.UnitPrice.Equal(dec("225000")), "nominal unit price carries the total")
}

func TestBuildDataset_ContractLaborIgnoresStalePrevailingWage(t *testing.T) {
	st := newFakeStore(&domain.ExpenseItem{
		Section:        domain.SectionNonCashLaborTotal,
		Label:          string(domain.StageHarvest),
		Amount:         dec("999"), // stale stored amount, must be recomputed
		ContractPrice:  nd("500000"),
		PrevailingWage: nd("75000"),
	})

	ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{})
	require.NoError(t, err)

	assert.True(t, ds.TotalLabor.Equal(dec("500000")), "total labor = %s", ds.TotalLabor)
	require.Len(t, ds.Labor, 1)
	assert.Equal(t, domain.LabelLaborFamily, ds.Labor[0].Label)
}

func TestBuildDataset_DailyLaborRecomputed(t *testing.T) {
	people := 4
	st := newFakeStore(&domain.ExpenseItem{
		Section:     domain.SectionNonCashLaborTotal,
		Label:       string(domain.StagePlanting),
		PeopleCount: &people,
		Days:        nd("3"),
		DailyWage:   nd("80000"),
	})

	ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{})
	require.NoError(t, err)

	assert.True(t, ds.TotalLabor.Equal(dec("960000")), "4×3×80000, got %s", ds.TotalLabor)
}

func TestBuildDataset_CashLaborReportsAsCashLine(t *testing.T) {
	people := 2
	st := newFakeStore(&domain.ExpenseItem{
		Section:     domain.SectionCashLaborTotal,
		Label:       string(domain.StageWeeding),
		PeopleCount: &people,
		Days:        nd("5"),
		DailyWage:   nd("60000"),
	})

	ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{})
	require.NoError(t, err)

	assert.Empty(t, ds.Labor)
	assert.True(t, ds.TotalLabor.IsZero())
	require.Len(t, ds.CashByCategory, 1)
	assert.Equal(t, domain.LabelLaborOutside, ds.CashByCategory[0].Label)
	assert.True(t, ds.TotalCash.Equal(dec("600000")), "total cash = %s", ds.TotalCash)
}

func TestBuildDataset_InvalidRowsDroppedAndCounted(t *testing.T) {
	st := newFakeStore(
		cashRow("seed", "", "10", "5000"),
		&domain.ExpenseItem{ // zero quantity: dropped, not zero-filled
			Section:   domain.SectionCashDetail,
			Label:     "seed",
			Quantity:  nd("0"),
			UnitPrice: nd("5000"),
		},
		&domain.ExpenseItem{ // negative price: dropped
			Section:   domain.SectionCashDetail,
			Label:     "fertilizer",
			Quantity:  nd("5"),
			UnitPrice: nd("-1"),
		},
	)

	ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{})
	require.NoError(t, err)

	require.Len(t, ds.CashByCategory, 1)
	assert.True(t, ds.TotalCash.Equal(dec("50000")))
	assert.Equal(t, 2, ds.SkippedRows)
}

func TestBuildDataset_TotalsInvariants(t *testing.T) {
	people := 3
	st := newFakeStore(
		&domain.ExpenseItem{
			Section: domain.SectionProduction, Label: "rice",
			Quantity: nd("2000"), Unit: strPtr("kg"), UnitPrice: nd("7500"),
		},
		cashRow("fertilizer", "Urea", "100", "6000"),
		&domain.ExpenseItem{Section: domain.SectionCashDetail, Label: string(domain.ExtraTransport), Amount: dec("120000")},
		&domain.ExpenseItem{
			Section: domain.SectionCashLaborTotal, Label: string(domain.StageLandPrep),
			ContractPrice: nd("400000"),
		},
		&domain.ExpenseItem{
			Section: domain.SectionNonCashLaborTotal, Label: string(domain.StageHarvest),
			PeopleCount: &people, Days: nd("2"), DailyWage: nd("70000"),
		},
		&domain.ExpenseItem{
			Section: domain.SectionToolDetail, Label: "hoe",
			Quantity: nd("2"), UnitPrice: nd("85000"),
		},
		&domain.ExpenseItem{Section: domain.SectionNonCashExtra, Label: string(domain.ExtraLandRent), Amount: dec("1000000")},
	)

	for _, factor := range []string{"1", "1.5", "0.25"} {
		ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{LandFactor: dec(factor)})
		require.NoError(t, err)

		assert.True(t, ds.TotalNonCash.Equal(ds.TotalLabor.Add(ds.TotalTools).Add(ds.TotalExtras)),
			"factor %s: non-cash invariant", factor)
		assert.True(t, ds.TotalCost.Equal(ds.TotalCash.Add(ds.TotalNonCash)),
			"factor %s: total cost invariant", factor)
	}
}

func TestBuildDataset_ScalingIsLinear(t *testing.T) {
	st := newFakeStore(
		&domain.ExpenseItem{
			Section: domain.SectionProduction, Label: "rice",
			Quantity: nd("2000"), Unit: strPtr("kg"), UnitPrice: nd("7500"),
		},
		&domain.ExpenseItem{
			Section: domain.SectionProduction, Label: "corn",
			Quantity: nd("300"), Unit: strPtr("kg"), UnitPrice: nd("4000"),
		},
	)
	svc := NewReportService(st)

	base, err := svc.BuildDataset(context.Background(), testUser, Filter{LandFactor: dec("1")})
	require.NoError(t, err)
	doubled, err := svc.BuildDataset(context.Background(), testUser, Filter{LandFactor: dec("2")})
	require.NoError(t, err)

	assert.True(t, doubled.TotalReceipts.Equal(base.TotalReceipts.Mul(dec("2"))),
		"receipts %s vs %s", doubled.TotalReceipts, base.TotalReceipts)
	// per-unit prices stay constant under scaling
	require.Len(t, doubled.Production, 2)
	assert.True(t, doubled.Production[0].UnitPrice.Equal(*base.Production[0].UnitPrice))
}

func TestBuildDataset_ToolQuantityScaledPriceUnscaled(t *testing.T) {
	st := newFakeStore(&domain.ExpenseItem{
		Section: domain.SectionToolDetail, Label: "sprayer",
		Quantity: nd("2"), UnitPrice: nd("150000"),
	})

	ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{LandFactor: dec("1.5")})
	require.NoError(t, err)

	require.Len(t, ds.Tools, 1)
	row := ds.Tools[0]
	require.NotNil(t, row.Quantity)
	assert.True(t, row.Quantity.Equal(dec("3")))
	require.NotNil(t, row.UnitPrice)
	assert.True(t, row.UnitPrice.Equal(dec("150000")))
	assert.True(t, row.Amount.Equal(dec("450000")))
}

func TestBuildDataset_Deterministic(t *testing.T) {
	st := newFakeStore(
		cashRow("fertilizer", "Urea", "100", "6000"),
		cashRow("seed", "IR64", "25", "12000"),
		cashRow("fertilizer", "NPK", "50", "9000"),
		&domain.ExpenseItem{Section: domain.SectionCashDetail, Label: string(domain.ExtraTax), Amount: dec("150000")},
	)
	svc := NewReportService(st)

	first, err := svc.BuildDataset(context.Background(), testUser, Filter{LandFactor: dec("1.5")})
	require.NoError(t, err)
	second, err := svc.BuildDataset(context.Background(), testUser, Filter{LandFactor: dec("1.5")})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildDataset_YearFilterDefusesEmptySeasonSet(t *testing.T) {
	st := newFakeStore(cashRow("seed", "", "10", "5000"))
	year := 1999

	ds, err := NewReportService(st).BuildDataset(context.Background(), testUser, Filter{Year: &year})
	require.NoError(t, err)

	assert.Empty(t, ds.CashByCategory)
	assert.True(t, ds.TotalCost.IsZero())
	// the store must have received a non-nil, empty season-id set, which its
	// opts helper turns into the uuid.Nil sentinel rather than an empty IN
	require.NotEmpty(t, st.listOpts)
	for _, opts := range st.listOpts {
		assert.NotNil(t, opts.SeasonIDs)
		assert.Empty(t, opts.SeasonIDs)
	}
}

func TestBuildDataset_YearFilterSpanningBoundaryMatchesBothYears(t *testing.T) {
	st := newFakeStore(cashRow("seed", "", "10", "5000"))
	svc := NewReportService(st)

	for _, year := range []int{2024, 2025} {
		y := year
		ds, err := svc.BuildDataset(context.Background(), testUser, Filter{Year: &y})
		require.NoError(t, err)
		assert.True(t, ds.TotalCash.Equal(dec("50000")), "year %d should match the season", year)
	}
}

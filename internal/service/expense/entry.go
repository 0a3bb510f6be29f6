package expense

import (
	"net/http"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func invalid(msg string) error {
	return constants.NewCodedError(http.StatusBadRequest, msg)
}

// buildItem normalizes the single populated entry variant into a canonical
// stored row.
func buildItem(userID uuid.UUID, req *dto.CreateExpenseRequest) (*domain.ExpenseItem, error) {
	item := &domain.ExpenseItem{
		UserID:   userID,
		SeasonID: req.SeasonID,
	}

	variants := 0
	for _, set := range []bool{
		req.Material != nil, req.DailyLabor != nil, req.ContractLabor != nil,
		req.Tool != nil, req.Extra != nil,
	} {
		if set {
			variants++
		}
	}
	if variants != 1 {
		return nil, invalid("exactly one entry variant must be set")
	}

	switch {
	case req.Material != nil:
		return buildMaterial(item, req.Material)
	case req.DailyLabor != nil:
		return buildDailyLabor(item, req.DailyLabor)
	case req.ContractLabor != nil:
		return buildContractLabor(item, req.ContractLabor)
	case req.Tool != nil:
		return buildTool(item, req.Tool)
	default:
		return buildExtra(item, req.Extra)
	}
}

func buildMaterial(item *domain.ExpenseItem, m *dto.MaterialEntry) (*domain.ExpenseItem, error) {
	if !domain.MaterialCategory(m.Category).Valid() {
		return nil, invalid("unknown material category")
	}

	qty, ok := utils.ParseDecimal(m.Quantity)
	if !ok || !qty.IsPositive() {
		return nil, invalid("material quantity must be positive")
	}
	price, ok := utils.ParseDecimal(m.UnitPrice)
	if !ok || price.IsNegative() {
		return nil, invalid("material unit price must not be negative")
	}

	item.Section = domain.SectionCashDetail
	item.Label = m.Category
	if m.Name != "" {
		item.Name = &m.Name
	}
	item.Quantity = decimal.NewNullDecimal(qty)
	if m.Unit != "" {
		item.Unit = &m.Unit
	}
	item.UnitPrice = decimal.NewNullDecimal(price)
	item.Amount = qty.Mul(price)

	return item, nil
}

func buildDailyLabor(item *domain.ExpenseItem, l *dto.DailyLaborEntry) (*domain.ExpenseItem, error) {
	if !domain.LaborStage(l.Stage).Valid() {
		return nil, invalid("unknown labor stage")
	}

	entry := domain.LaborEntry{
		Stage:       domain.LaborStage(l.Stage),
		Mode:        domain.LaborModeDaily,
		PeopleCount: l.PeopleCount,
		Days:        utils.ParseDecimalOrZero(l.Days),
		DailyWage:   utils.ParseDecimalOrZero(l.DailyWage),
		HoursPerDay: utils.ParseDecimalOrZero(l.HoursPerDay),
	}

	amount, ok := entry.Amount()
	if !ok {
		return nil, invalid("daily labor requires people_count>0, days>0 and daily_wage>=0")
	}

	item.Section = laborSection(l.Cash)
	item.Label = l.Stage
	item.Amount = amount
	item.PeopleCount = &l.PeopleCount
	item.Days = decimal.NewNullDecimal(entry.Days)
	item.DailyWage = decimal.NewNullDecimal(entry.DailyWage)
	if !entry.HoursPerDay.IsZero() {
		item.HoursPerDay = decimal.NewNullDecimal(entry.HoursPerDay)
	}

	return item, nil
}

func buildContractLabor(item *domain.ExpenseItem, l *dto.ContractLaborEntry) (*domain.ExpenseItem, error) {
	if !domain.LaborStage(l.Stage).Valid() {
		return nil, invalid("unknown labor stage")
	}

	entry := domain.LaborEntry{
		Stage:          domain.LaborStage(l.Stage),
		Mode:           domain.LaborModeContract,
		ContractPrice:  utils.ParseDecimalOrZero(l.ContractPrice),
		PrevailingWage: utils.ParseDecimalOrZero(l.PrevailingWage),
	}

	amount, ok := entry.Amount()
	if !ok {
		return nil, invalid("contract price must not be negative")
	}

	item.Section = laborSection(l.Cash)
	item.Label = l.Stage
	item.Amount = amount
	item.ContractPrice = decimal.NewNullDecimal(entry.ContractPrice)
	if !entry.PrevailingWage.IsZero() {
		item.PrevailingWage = decimal.NewNullDecimal(entry.PrevailingWage)
	}

	return item, nil
}

func buildTool(item *domain.ExpenseItem, t *dto.ToolEntry) (*domain.ExpenseItem, error) {
	qty, ok := utils.ParseDecimal(t.Quantity)
	if !ok || !qty.IsPositive() {
		return nil, invalid("tool quantity must be positive")
	}
	price, ok := utils.ParseDecimal(t.PurchasePrice)
	if !ok || price.IsNegative() {
		return nil, invalid("tool purchase price must not be negative")
	}

	item.Section = domain.SectionToolDetail
	item.Label = t.ToolName
	item.Quantity = decimal.NewNullDecimal(qty)
	item.UnitPrice = decimal.NewNullDecimal(price)
	item.Amount = qty.Mul(price)
	// Useful life and salvage value are collected but not amortized into
	// totals; the purchase price is charged flat.
	item.UsefulLifeYears = t.UsefulLifeYears
	if salvage, ok := utils.ParseDecimal(t.SalvageValue); ok {
		item.SalvageValue = decimal.NewNullDecimal(salvage)
	}

	return item, nil
}

func buildExtra(item *domain.ExpenseItem, e *dto.ExtraEntry) (*domain.ExpenseItem, error) {
	if !domain.ExtraType(e.Type).Valid() {
		return nil, invalid("unknown extra type")
	}

	amount, ok := utils.ParseDecimal(e.Amount)
	if !ok || !amount.IsPositive() {
		// zero-value extras are omitted from the saved set
		return nil, invalid("extra amount must be positive")
	}

	if e.Cash {
		item.Section = domain.SectionCashDetail
	} else {
		item.Section = domain.SectionNonCashExtra
	}
	item.Label = e.Type
	item.Amount = amount

	return item, nil
}

func laborSection(cash bool) domain.Section {
	if cash {
		return domain.SectionCashLaborTotal
	}
	return domain.SectionNonCashLaborTotal
}

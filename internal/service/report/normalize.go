package report

import (
	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// canonicalRow is a normalized source row. Quantity-bearing rows carry qty
// and/or unitPrice; flat-nominal rows carry only amount.
type canonicalRow struct {
	label     string
	name      string
	qty       *decimal.Decimal
	unit      *string
	unitPrice *decimal.Decimal
	amount    decimal.Decimal
}

func (r canonicalRow) nominal() bool {
	return r.qty == nil && r.unitPrice == nil
}

// normalizeRow re-derives a row's subtotal from its recorded figures. ok is
// false for rows failing their validity predicate; those are silently dropped
// from totals (best-effort aggregation over partial historical data) and only
// counted for observability.
func normalizeRow(item *domain.ExpenseItem) (canonicalRow, bool) {
	row := canonicalRow{label: item.Label}
	if item.Name != nil {
		row.name = *item.Name
	}

	switch item.Section {
	case domain.SectionCashLaborTotal, domain.SectionNonCashLaborTotal:
		amount, ok := laborAmount(item)
		if !ok {
			return row, false
		}
		row.amount = amount
		return row, true

	case domain.SectionNonCashExtra:
		// a present extra's amount is used as-is
		row.amount = item.Amount
		return row, true

	default:
		return normalizeQuantityRow(item, row)
	}
}

// normalizeQuantityRow handles production, cash-detail and tool rows: the
// quantity × unit-price rule with its drop predicates, falling back to the
// recorded amount when one of the figures is absent and to a flat-nominal row
// when both are.
func normalizeQuantityRow(item *domain.ExpenseItem, row canonicalRow) (canonicalRow, bool) {
	qtyPresent := item.Quantity.Valid
	pricePresent := item.UnitPrice.Valid

	if !qtyPresent && !pricePresent {
		row.amount = item.Amount
		return row, true
	}

	if qtyPresent {
		qty := item.Quantity.Decimal
		if !qty.IsPositive() {
			return row, false
		}
		row.qty = &qty
	}
	if pricePresent {
		price := item.UnitPrice.Decimal
		if price.IsNegative() {
			return row, false
		}
		row.unitPrice = &price
	}
	row.unit = item.Unit

	if qtyPresent && pricePresent {
		row.amount = row.qty.Mul(*row.unitPrice)
	} else {
		row.amount = item.Amount
	}

	return row, true
}

// laborAmount recomputes a labor row under the mode its populated fields
// imply: people×days×wage for daily entries, the flat contract price for
// piece-work, the stored amount when neither set survives.
func laborAmount(item *domain.ExpenseItem) (decimal.Decimal, bool) {
	if item.PeopleCount != nil || item.Days.Valid || item.DailyWage.Valid {
		entry := domain.LaborEntry{Mode: domain.LaborModeDaily}
		if item.PeopleCount != nil {
			entry.PeopleCount = *item.PeopleCount
		}
		if item.Days.Valid {
			entry.Days = item.Days.Decimal
		}
		if item.DailyWage.Valid {
			entry.DailyWage = item.DailyWage.Decimal
		}
		return entry.Amount()
	}

	if item.ContractPrice.Valid {
		entry := domain.LaborEntry{
			Mode:          domain.LaborModeContract,
			ContractPrice: item.ContractPrice.Decimal,
		}
		return entry.Amount()
	}

	return item.Amount, true
}

package domain

import "github.com/shopspring/decimal"

// LaborMode selects how a labor entry is priced: per person-day or as a flat
// piece-work contract.
type LaborMode string

const (
	LaborModeDaily    LaborMode = "daily"
	LaborModeContract LaborMode = "contract"
)

// LaborEntry holds both modes' fields; exactly one mode is populated at a
// time, enforced by SwitchLaborMode.
type LaborEntry struct {
	Stage LaborStage
	Mode  LaborMode

	PeopleCount int
	Days        decimal.Decimal
	DailyWage   decimal.Decimal
	HoursPerDay decimal.Decimal

	ContractPrice  decimal.Decimal
	PrevailingWage decimal.Decimal
}

// SwitchLaborMode returns the entry switched to mode with the other mode's
// fields cleared, so stale values never leak into a recomputed amount.
func SwitchLaborMode(e LaborEntry, mode LaborMode) LaborEntry {
	if e.Mode == mode {
		return e
	}

	e.Mode = mode
	switch mode {
	case LaborModeDaily:
		e.ContractPrice = decimal.Zero
		e.PrevailingWage = decimal.Zero
	case LaborModeContract:
		e.PeopleCount = 0
		e.Days = decimal.Zero
		e.DailyWage = decimal.Zero
		e.HoursPerDay = decimal.Zero
	}

	return e
}

// Amount computes the entry's subtotal under its active mode. ok is false when
// the entry fails its validity predicate and must not contribute to totals.
func (e LaborEntry) Amount() (decimal.Decimal, bool) {
	switch e.Mode {
	case LaborModeDaily:
		if e.PeopleCount <= 0 || !e.Days.IsPositive() || e.DailyWage.IsNegative() {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(int64(e.PeopleCount)).Mul(e.Days).Mul(e.DailyWage), true
	case LaborModeContract:
		if e.ContractPrice.IsNegative() {
			return decimal.Zero, false
		}
		return e.ContractPrice, true
	}
	return decimal.Zero, false
}

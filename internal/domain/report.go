package domain

import "github.com/shopspring/decimal"

// ReportRow is one line of a report section.
//
// For quantity-bearing rows (materials, production, tools) Quantity/Unit hold
// the summed figures and UnitPrice the weighted-average per-unit price. For
// flat-nominal rows (extras, lump-sum labor) Quantity and Unit are nil and
// UnitPrice carries the summed total value. That overload mirrors what the
// report screens consume and is deliberate, not a bug.
type ReportRow struct {
	Label     string           `json:"label"`
	Name      string           `json:"name,omitempty"`
	Quantity  *decimal.Decimal `json:"quantity"`
	Unit      *string          `json:"unit"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal  `json:"amount"`
}

// ReportDataset is the aggregation core's output, consumed by the report and
// chart screens.
//
// Invariants: TotalNonCash = TotalLabor + TotalTools + TotalExtras and
// TotalCost = TotalCash + TotalNonCash.
type ReportDataset struct {
	Production     []ReportRow `json:"production"`
	CashByCategory []ReportRow `json:"cash_by_category"`
	Labor          []ReportRow `json:"labor"`
	Tools          []ReportRow `json:"tools"`
	Extras         []ReportRow `json:"extras"`

	TotalReceipts decimal.Decimal `json:"total_receipts"`
	TotalCash     decimal.Decimal `json:"total_cash"`
	TotalLabor    decimal.Decimal `json:"total_labor"`
	TotalTools    decimal.Decimal `json:"total_tools"`
	TotalExtras   decimal.Decimal `json:"total_extras"`
	TotalNonCash  decimal.Decimal `json:"total_non_cash"`
	TotalCost     decimal.Decimal `json:"total_cost"`

	// SkippedRows counts source rows dropped by the validity predicates,
	// surfaced for observability; aggregation itself stays best-effort.
	SkippedRows int `json:"skipped_rows"`

	// StandardDailyWage is echoed back for reference only, never totaled.
	StandardDailyWage *decimal.Decimal `json:"standard_daily_wage,omitempty"`
}

package dto

import "github.com/google/uuid"

// CreateExpenseRequest carries exactly one populated entry variant. Numeric
// fields are strings because the entry forms accept both `.` and `,` decimal
// separators; parsing happens in the expense service.
type CreateExpenseRequest struct {
	SeasonID uuid.UUID `json:"season_id" validate:"required"`

	Material      *MaterialEntry      `json:"material,omitempty"`
	DailyLabor    *DailyLaborEntry    `json:"daily_labor,omitempty"`
	ContractLabor *ContractLaborEntry `json:"contract_labor,omitempty"`
	Tool          *ToolEntry          `json:"tool,omitempty"`
	Extra         *ExtraEntry         `json:"extra,omitempty"`
}

type UpdateExpenseRequest = CreateExpenseRequest

type MaterialEntry struct {
	Category  string `json:"category" validate:"required"`
	Name      string `json:"name,omitempty"`
	Quantity  string `json:"quantity" validate:"required"`
	Unit      string `json:"unit,omitempty"`
	UnitPrice string `json:"unit_price" validate:"required"`
}

type DailyLaborEntry struct {
	Stage       string `json:"stage" validate:"required"`
	PeopleCount int    `json:"people_count" validate:"required,min=1"`
	Days        string `json:"days" validate:"required"`
	DailyWage   string `json:"daily_wage" validate:"required"`
	HoursPerDay string `json:"hours_per_day,omitempty"`
	// Cash marks hired outside labor paid in money; family labor is non-cash.
	Cash bool `json:"cash"`
}

type ContractLaborEntry struct {
	Stage          string `json:"stage" validate:"required"`
	ContractPrice  string `json:"contract_price" validate:"required"`
	PrevailingWage string `json:"prevailing_wage,omitempty"`
	Cash           bool   `json:"cash"`
}

type ToolEntry struct {
	ToolName        string `json:"tool_name" validate:"required"`
	Quantity        string `json:"quantity" validate:"required"`
	PurchasePrice   string `json:"purchase_price" validate:"required"`
	UsefulLifeYears *int   `json:"useful_life_years,omitempty"`
	SalvageValue    string `json:"salvage_value,omitempty"`
}

type ExtraEntry struct {
	Type   string `json:"type" validate:"required"`
	Amount string `json:"amount" validate:"required"`
	Cash   bool   `json:"cash"`
}

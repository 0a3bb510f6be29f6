package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Section partitions expense_items rows by how the report consumes them.
type Section string

const (
	SectionProduction        Section = "production"
	SectionCashDetail        Section = "cash_detail"
	SectionCashLaborTotal    Section = "cash_labor_total"
	SectionNonCashLaborTotal Section = "noncash_labor_total"
	SectionToolDetail        Section = "noncash_tool_detail"
	SectionNonCashExtra      Section = "noncash_extra"
)

type MaterialCategory string

const (
	MaterialSeed        MaterialCategory = "seed"
	MaterialSeedling    MaterialCategory = "seedling"
	MaterialFertilizer  MaterialCategory = "fertilizer"
	MaterialInsecticide MaterialCategory = "insecticide"
	MaterialHerbicide   MaterialCategory = "herbicide"
	MaterialFungicide   MaterialCategory = "fungicide"
)

func (c MaterialCategory) Valid() bool {
	switch c {
	case MaterialSeed, MaterialSeedling, MaterialFertilizer,
		MaterialInsecticide, MaterialHerbicide, MaterialFungicide:
		return true
	}
	return false
}

type ExtraType string

const (
	ExtraTax       ExtraType = "tax"
	ExtraLandRent  ExtraType = "land_rent"
	ExtraTransport ExtraType = "transport"
)

func (t ExtraType) Valid() bool {
	switch t {
	case ExtraTax, ExtraLandRent, ExtraTransport:
		return true
	}
	return false
}

// LaborStage is one of the nine fixed cultivation stages a labor entry is
// recorded against.
type LaborStage string

const (
	StageNursery     LaborStage = "nursery"
	StageLandPrep    LaborStage = "land_prep"
	StagePlanting    LaborStage = "planting"
	StageFertilizing LaborStage = "fertilizing"
	StageIrrigation  LaborStage = "irrigation"
	StageWeeding     LaborStage = "weeding"
	StagePestControl LaborStage = "pest_control"
	StageHarvest     LaborStage = "harvest"
	StagePostharvest LaborStage = "postharvest"
)

func (s LaborStage) Valid() bool {
	switch s {
	case StageNursery, StageLandPrep, StagePlanting, StageFertilizing,
		StageIrrigation, StageWeeding, StagePestControl, StageHarvest, StagePostharvest:
		return true
	}
	return false
}

// Synthetic report labels for labor totals. Cash-paid external labor is
// reported as a cash cost line, family labor as the single non-cash labor row.
const (
	LabelLaborOutside = "labor_outside"
	LabelLaborFamily  = "labor_family"
)

// ExpenseItem is the canonical stored row shared by all five entry kinds.
// Label carries the material category, labor stage, tool name or extra type
// depending on the section; the trailing informational columns round-trip the
// original entry so it can be edited and re-normalized.
type ExpenseItem struct {
	ID       uuid.UUID `db:"id" json:"id"`
	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	SeasonID uuid.UUID `db:"season_id" json:"season_id"`
	Section  Section   `db:"section" json:"section"`
	Label    string    `db:"label" json:"label"`
	Name     *string   `db:"name" json:"name,omitempty"`

	Quantity  decimal.NullDecimal `db:"quantity" json:"quantity"`
	Unit      *string             `db:"unit" json:"unit,omitempty"`
	UnitPrice decimal.NullDecimal `db:"unit_price" json:"unit_price"`
	Amount    decimal.Decimal     `db:"amount" json:"amount"`

	PeopleCount     *int                `db:"people_count" json:"people_count,omitempty"`
	Days            decimal.NullDecimal `db:"days" json:"days,omitempty"`
	DailyWage       decimal.NullDecimal `db:"daily_wage" json:"daily_wage,omitempty"`
	HoursPerDay     decimal.NullDecimal `db:"hours_per_day" json:"hours_per_day,omitempty"`
	ContractPrice   decimal.NullDecimal `db:"contract_price" json:"contract_price,omitempty"`
	PrevailingWage  decimal.NullDecimal `db:"prevailing_wage" json:"prevailing_wage,omitempty"`
	UsefulLifeYears *int                `db:"useful_life_years" json:"useful_life_years,omitempty"`
	SalvageValue    decimal.NullDecimal `db:"salvage_value" json:"salvage_value,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

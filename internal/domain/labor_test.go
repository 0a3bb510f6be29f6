package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSwitchLaborMode_ClearsInactiveFields(t *testing.T) {
	entry := LaborEntry{
		Stage:       StagePlanting,
		Mode:        LaborModeDaily,
		PeopleCount: 4,
		Days:        decimal.NewFromInt(3),
		DailyWage:   decimal.NewFromInt(80000),
		HoursPerDay: decimal.NewFromInt(8),
	}

	switched := SwitchLaborMode(entry, LaborModeContract)
	if switched.PeopleCount != 0 || !switched.Days.IsZero() || !switched.DailyWage.IsZero() || !switched.HoursPerDay.IsZero() {
		t.Error("switching to contract must clear daily-mode fields")
	}

	switched.ContractPrice = decimal.NewFromInt(500000)
	switched.PrevailingWage = decimal.NewFromInt(75000)

	back := SwitchLaborMode(switched, LaborModeDaily)
	if !back.ContractPrice.IsZero() || !back.PrevailingWage.IsZero() {
		t.Error("switching back to daily must clear contract-mode fields")
	}
}

func TestSwitchLaborMode_NoStaleAmountAfterRoundTrip(t *testing.T) {
	entry := LaborEntry{
		Stage:       StageHarvest,
		Mode:        LaborModeDaily,
		PeopleCount: 4,
		Days:        decimal.NewFromInt(3),
		DailyWage:   decimal.NewFromInt(80000),
	}

	entry = SwitchLaborMode(entry, LaborModeContract)
	entry.ContractPrice = decimal.NewFromInt(500000)

	amount, ok := entry.Amount()
	if !ok {
		t.Fatal("contract entry should be valid")
	}
	if !amount.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("amount = %s, want 500000 (stale daily fields leaked)", amount)
	}
}

func TestSwitchLaborMode_SameModeIsNoop(t *testing.T) {
	entry := LaborEntry{Mode: LaborModeDaily, PeopleCount: 2, Days: decimal.NewFromInt(1)}
	if got := SwitchLaborMode(entry, LaborModeDaily); got != entry {
		t.Error("switching to the current mode must not change the entry")
	}
}

func TestLaborEntry_Amount(t *testing.T) {
	tests := []struct {
		name   string
		entry  LaborEntry
		wantOK bool
		want   int64
	}{
		{
			"daily valid",
			LaborEntry{Mode: LaborModeDaily, PeopleCount: 4, Days: decimal.NewFromInt(3), DailyWage: decimal.NewFromInt(80000)},
			true, 960000,
		},
		{
			"daily zero people invalid",
			LaborEntry{Mode: LaborModeDaily, Days: decimal.NewFromInt(3), DailyWage: decimal.NewFromInt(80000)},
			false, 0,
		},
		{
			"contract valid",
			LaborEntry{Mode: LaborModeContract, ContractPrice: decimal.NewFromInt(500000)},
			true, 500000,
		},
		{
			"contract zero price valid",
			LaborEntry{Mode: LaborModeContract},
			true, 0,
		},
		{
			"contract negative invalid",
			LaborEntry{Mode: LaborModeContract, ContractPrice: decimal.NewFromInt(-1)},
			false, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := tt.entry.Amount()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !amount.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("amount = %s, want %d", amount, tt.want)
			}
		})
	}
}

package domain

import (
	"testing"
	"time"
)

func TestSeason_CoversYear(t *testing.T) {
	season := &Season{
		StartDate: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		year int
		want bool
	}{
		{"start year matches", 2024, true},
		{"end year matches", 2025, true},
		{"year before", 2023, false},
		{"year after", 2026, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := season.CoversYear(tt.year); got != tt.want {
				t.Errorf("CoversYear(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}

func TestSeason_CoversYearMultiYearSpan(t *testing.T) {
	season := &Season{
		StartDate: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	for year := 2023; year <= 2025; year++ {
		if !season.CoversYear(year) {
			t.Errorf("CoversYear(%d) = false, want true", year)
		}
	}
}

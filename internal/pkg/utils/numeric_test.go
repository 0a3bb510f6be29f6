package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   string
	}{
		{"dot separator", "12.5", true, "12.5"},
		{"comma separator", "12,5", true, "12.5"},
		{"integer", "6000", true, "6000"},
		{"surrounding whitespace", " 7,25 ", true, "7.25"},
		{"empty", "", false, "0"},
		{"letters", "abc", false, "0"},
		{"two commas", "1,2,3", false, "0"},
		{"negative", "-3,5", true, "-3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDecimal(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDecimal(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseDecimal(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDecimalOrZero(t *testing.T) {
	if got := ParseDecimalOrZero("nonsense"); !got.IsZero() {
		t.Errorf("malformed input must degrade to zero, got %s", got)
	}
	if got := ParseDecimalOrZero("8"); !got.Equal(decimal.NewFromInt(8)) {
		t.Errorf("got %s, want 8", got)
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Season struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	UserID           uuid.UUID       `db:"user_id" json:"user_id"`
	SeasonNo         int             `db:"season_no" json:"season_no"`
	StartDate        time.Time       `db:"start_date" json:"start_date"`
	EndDate          time.Time       `db:"end_date" json:"end_date"`
	LandAreaHectares decimal.Decimal `db:"land_area_hectares" json:"land_area_hectares"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// CoversYear reports whether the season's date range touches the calendar
// year. A season spanning a year boundary matches both its start and end year.
func (s *Season) CoversYear(year int) bool {
	return year >= s.StartDate.Year() && year <= s.EndDate.Year()
}

package dto

// Dates use the 2006-01-02 layout; land area accepts `.` or `,` decimals like
// every other user-entered number.
type CreateSeasonRequest struct {
	SeasonNo         int    `json:"season_no" validate:"required,min=1"`
	StartDate        string `json:"start_date" validate:"required"`
	EndDate          string `json:"end_date" validate:"required"`
	LandAreaHectares string `json:"land_area_hectares" validate:"required"`
}

type UpdateSeasonRequest struct {
	SeasonNo         int    `json:"season_no" validate:"required,min=1"`
	StartDate        string `json:"start_date" validate:"required"`
	EndDate          string `json:"end_date" validate:"required"`
	LandAreaHectares string `json:"land_area_hectares" validate:"required"`
}

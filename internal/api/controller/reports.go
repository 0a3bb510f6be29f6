package controller

import (
	"net/http"
	"strconv"

	"github.com/Ferrr1/Tani-sub000/internal/pkg/utils"
	"github.com/Ferrr1/Tani-sub000/internal/service/report"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GetReportDataset builds the aggregated report. Query params: season_id or
// year restrict the rows; target_hectares/current_hectares set the land
// factor; standard_daily_wage is echoed as reference data.
func (c *Controller) GetReportDataset(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	filter := report.Filter{
		LandFactor: report.LandFactor(
			ctx.QueryParams().Get("target_hectares"),
			ctx.QueryParams().Get("current_hectares"),
		),
	}

	if raw := ctx.QueryParams().Get("season_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid season_id")
		}
		filter.SeasonID = &id
	}

	if raw := ctx.QueryParams().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		filter.Year = &year
	}

	if raw := ctx.QueryParams().Get("standard_daily_wage"); raw != "" {
		if wage, ok := utils.ParseDecimal(raw); ok {
			filter.StandardDailyWage = &wage
		}
	}

	dataset, err := c.reportService.BuildDataset(ctx.Request().Context(), uid, filter)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dataset)
}

package controller

import (
	"net/http"

	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (c *Controller) CreateExpense(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	request := &dto.CreateExpenseRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	created, err := c.expenseService.CreateEntry(ctx.Request().Context(), uid, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, created)
}

func (c *Controller) ListExpenses(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	var seasonID *uuid.UUID
	if raw := ctx.QueryParams().Get("season_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid season_id")
		}
		seasonID = &id
	}

	items, err := c.expenseService.List(ctx.Request().Context(), uid, seasonID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) UpdateExpense(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	request := &dto.UpdateExpenseRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	updated, err := c.expenseService.UpdateEntry(ctx.Request().Context(), uid, id, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *Controller) DeleteExpense(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.expenseService.Delete(ctx.Request().Context(), uid, id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

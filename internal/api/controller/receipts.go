package controller

import (
	"net/http"

	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (c *Controller) CreateReceipt(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	request := &dto.CreateReceiptRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	created, err := c.receiptService.Create(ctx.Request().Context(), uid, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, created)
}

func (c *Controller) ListReceipts(ctx echo.Context) error {
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

	items, err := c.receiptService.List(ctx.Request().Context(), uid, seasonID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) DeleteReceipt(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.receiptService.Delete(ctx.Request().Context(), uid, id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

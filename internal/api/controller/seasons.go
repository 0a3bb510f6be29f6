package controller

import (
	"net/http"

	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) CreateSeason(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	request := &dto.CreateSeasonRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	created, err := c.seasonService.Create(ctx.Request().Context(), uid, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, created)
}

func (c *Controller) ListSeasons(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	seasons, err := c.seasonService.List(ctx.Request().Context(), uid)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, seasons)
}

func (c *Controller) GetSeason(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	season, err := c.seasonService.Get(ctx.Request().Context(), uid, id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, season)
}

func (c *Controller) UpdateSeason(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	request := &dto.UpdateSeasonRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	updated, err := c.seasonService.Update(ctx.Request().Context(), uid, id, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *Controller) DeleteSeason(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.seasonService.Delete(ctx.Request().Context(), uid, id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

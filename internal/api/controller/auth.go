package controller

import (
	"net/http"
	"time"

	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) SignupUser(ctx echo.Context) error {
	request := &dto.SignupUserRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	resp, err := c.authService.SignupUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, resp.AuthToken)

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) LoginUser(ctx echo.Context) error {
	request := &dto.LoginUserRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	resp, err := c.authService.LoginUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, resp.AuthToken)

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) LogoutUser(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) GetUser(ctx echo.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	user, err := c.authService.GetUser(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, user)
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

package api

import (
	"github.com/labstack/echo/v4"

	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/utils"
)

// AuthMiddleware resolves the auth cookie into the requesting user's id. Every
// route behind it can rely on constants.CtxKeyUserID being set; ownership
// checks downstream key off it.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)

		return next(ctx)
	}
}

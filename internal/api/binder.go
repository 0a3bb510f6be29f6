package api

import (
	"net/http"

	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

// Binder binds and validates in one step, so handlers only call ctx.Bind.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	if err := b.base.Bind(i, ctx); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return ctx.Validate(i)
}

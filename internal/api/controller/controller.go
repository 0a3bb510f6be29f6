package controller

import (
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/service/auth"
	"github.com/Ferrr1/Tani-sub000/internal/service/expense"
	"github.com/Ferrr1/Tani-sub000/internal/service/receipt"
	"github.com/Ferrr1/Tani-sub000/internal/service/report"
	"github.com/Ferrr1/Tani-sub000/internal/service/season"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	authService    *auth.Service
	seasonService  *season.Service
	expenseService *expense.Service
	receiptService *receipt.Service
	reportService  *report.Service
}

func NewController(
	authService *auth.Service,
	seasonService *season.Service,
	expenseService *expense.Service,
	receiptService *receipt.Service,
	reportService *report.Service,
) *Controller {
	return &Controller{
		authService:    authService,
		seasonService:  seasonService,
		expenseService: expenseService,
		receiptService: receiptService,
		reportService:  reportService,
	}
}

func userID(ctx echo.Context) (uuid.UUID, error) {
	id, ok := ctx.Get(constants.CtxKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, constants.ErrUnauthorized
	}
	return id, nil
}

func pathID(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, constants.ErrDBNotFound
	}
	return id, nil
}

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/Ferrr1/Tani-sub000/internal/api/controller"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/logger"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store"
	"github.com/Ferrr1/Tani-sub000/internal/service/auth"
	"github.com/Ferrr1/Tani-sub000/internal/service/expense"
	"github.com/Ferrr1/Tani-sub000/internal/service/receipt"
	"github.com/Ferrr1/Tani-sub000/internal/service/report"
	"github.com/Ferrr1/Tani-sub000/internal/service/season"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(
		auth.NewService(store),
		season.NewSeasonService(store),
		expense.NewExpenseService(store),
		receipt.NewReceiptService(store),
		report.NewReportService(store),
	)

	api := svc.router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.SignupUser)
	authGroup.POST("/login", cntrl.LoginUser)
	authGroup.DELETE("/logout", cntrl.LogoutUser)

	user := api.Group("/user", svc.AuthMiddleware)
	user.GET("/get", cntrl.GetUser)

	seasons := api.Group("/seasons", svc.AuthMiddleware)
	seasons.POST("/create", cntrl.CreateSeason)
	seasons.GET("/list", cntrl.ListSeasons)
	seasons.GET("/:id", cntrl.GetSeason)
	seasons.PUT("/:id", cntrl.UpdateSeason)
	seasons.DELETE("/:id", cntrl.DeleteSeason)

	expenses := api.Group("/expenses", svc.AuthMiddleware)
	expenses.POST("/create", cntrl.CreateExpense)
	expenses.GET("/list", cntrl.ListExpenses)
	expenses.PUT("/:id", cntrl.UpdateExpense)
	expenses.DELETE("/:id", cntrl.DeleteExpense)

	receipts := api.Group("/receipts", svc.AuthMiddleware)
	receipts.POST("/create", cntrl.CreateReceipt)
	receipts.GET("/list", cntrl.ListReceipts)
	receipts.DELETE("/:id", cntrl.DeleteReceipt)

	reports := api.Group("/reports", svc.AuthMiddleware)
	reports.GET("/dataset", cntrl.GetReportDataset)

	return svc, nil
}

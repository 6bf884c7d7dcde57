package transport

import (
	"github.com/labstack/echo/v4"
	"github.com/ledgerhub/ledgerhub.go/controllers"
	"github.com/ledgerhub/ledgerhub.go/lib/service"
)

func RegisterEndpoints(svc *service.LedgerhubService, e *echo.Echo, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	e.GET("/healthz", controllers.NewHealthController().Check)

	voucherCtrl := controllers.NewVoucherController(svc)
	ledgerCtrl := controllers.NewLedgerController(svc)
	returnCtrl := controllers.NewTdsReturnController(svc)

	api := e.Group("/api", logMw)

	api.POST("/vouchers", voucherCtrl.CreateVoucher, strictRateLimitMiddleware)
	api.GET("/vouchers", voucherCtrl.GetVouchers)
	api.GET("/vouchers/:id", voucherCtrl.GetVoucher)

	api.POST("/ledgers", ledgerCtrl.CreateLedger)
	api.GET("/ledgers", ledgerCtrl.GetLedgers)
	api.GET("/ledgers/:id", ledgerCtrl.GetLedger)
	api.GET("/ledgers/:id/balance", ledgerCtrl.GetLedgerBalance)

	api.POST("/tds26q", returnCtrl.SubmitReturn, strictRateLimitMiddleware)
	api.GET("/tds26q", returnCtrl.GetReturnSummaries)
}

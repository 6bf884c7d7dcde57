package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/ledgerhub/ledgerhub.go/lib/responses"
	"github.com/ledgerhub/ledgerhub.go/lib/service"
	"github.com/shopspring/decimal"
)

// LedgerController : Ledger management controller struct
type LedgerController struct {
	svc *service.LedgerhubService
}

func NewLedgerController(svc *service.LedgerhubService) *LedgerController {
	return &LedgerController{svc: svc}
}

type CreateLedgerRequestBody struct {
	Name           string          `json:"name" validate:"required"`
	GroupID        int64           `json:"groupId"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	BalanceType    string          `json:"balanceType" validate:"omitempty,oneof=debit credit"`
}

// CreateLedger godoc
// @Summary      Create a ledger account
// @Accept       json
// @Produce      json
// @Tags         Ledger
// @Param        ledger  body      CreateLedgerRequestBody  True  "Ledger"
// @Success      200     {object}  models.Ledger
// @Failure      400     {object}  responses.ErrorResponse
// @Failure      500     {object}  responses.ErrorResponse
// @Router       /api/ledgers [post]
func (controller *LedgerController) CreateLedger(c echo.Context) error {
	var body CreateLedgerRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create ledger request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create ledger request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if body.OpeningBalance.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	ledger := &models.Ledger{
		Name:           body.Name,
		GroupID:        body.GroupID,
		OpeningBalance: body.OpeningBalance,
		BalanceType:    body.BalanceType,
	}
	ledger, err := controller.svc.CreateLedger(c.Request().Context(), ledger)
	if err != nil {
		c.Logger().Errorf("Error creating ledger: name:%s error: %v", body.Name, err)
		return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, ledger)
}

// GetLedgers godoc
// @Summary      List ledger accounts
// @Produce      json
// @Tags         Ledger
// @Success      200  {object}  []models.Ledger
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/ledgers [get]
func (controller *LedgerController) GetLedgers(c echo.Context) error {
	ledgers, err := controller.svc.Ledgers(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error fetching ledgers: %v", err)
		return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, ledgers)
}

// GetLedger godoc
// @Summary      Get a ledger account
// @Produce      json
// @Tags         Ledger
// @Param        id   path      int  true  "Ledger ID"
// @Success      200  {object}  models.Ledger
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /api/ledgers/{id} [get]
func (controller *LedgerController) GetLedger(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	ledger, err := controller.svc.FindLedger(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("Invalid get ledger request id:%v", id)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.JSON(http.StatusOK, ledger)
}

// GetLedgerBalance godoc
// @Summary      Ledger balance
// @Description  Opening balance folded with the posted debit and credit totals
// @Produce      json
// @Tags         Ledger
// @Param        id   path      int  true  "Ledger ID"
// @Success      200  {object}  service.LedgerBalance
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /api/ledgers/{id}/balance [get]
func (controller *LedgerController) GetLedgerBalance(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	balance, err := controller.svc.LedgerBalanceFor(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("Error fetching balance for ledger_id:%v error: %v", id, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.JSON(http.StatusOK, balance)
}

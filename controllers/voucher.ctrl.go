package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/ledgerhub/ledgerhub.go/lib/responses"
	"github.com/ledgerhub/ledgerhub.go/lib/service"
	"github.com/shopspring/decimal"
)

// VoucherController : Voucher posting controller struct
type VoucherController struct {
	svc *service.LedgerhubService
}

func NewVoucherController(svc *service.LedgerhubService) *VoucherController {
	return &VoucherController{svc: svc}
}

type VoucherEntryRequest struct {
	LedgerID int64           `json:"ledgerId" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type" validate:"required,oneof=debit credit"`
}

type CreateVoucherRequestBody struct {
	Type      string                `json:"type" validate:"required"`
	Date      string                `json:"date" validate:"required,datetime=2006-01-02"`
	Number    string                `json:"number"`
	Narration string                `json:"narration"`
	Entries   []VoucherEntryRequest `json:"entries" validate:"required,min=2,dive"`
}

type CreateVoucherResponseBody struct {
	ID      int64  `json:"id"`
	Number  string `json:"number"`
	Message string `json:"message"`
}

// CreateVoucher godoc
// @Summary      Post a voucher
// @Description  Persists a voucher header and its debit/credit entries atomically
// @Accept       json
// @Produce      json
// @Tags         Voucher
// @Param        voucher  body      CreateVoucherRequestBody  True  "Voucher"
// @Success      200      {object}  CreateVoucherResponseBody
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /api/vouchers [post]
func (controller *VoucherController) CreateVoucher(c echo.Context) error {
	var body CreateVoucherRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create voucher request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create voucher request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	voucher := &models.Voucher{
		Type:      body.Type,
		Number:    body.Number,
		Date:      date,
		Narration: body.Narration,
	}
	entries := make([]models.VoucherEntry, len(body.Entries))
	for i, entry := range body.Entries {
		entries[i] = models.VoucherEntry{
			LedgerID:  entry.LedgerID,
			Amount:    entry.Amount,
			EntryType: entry.Type,
		}
	}

	c.Logger().Infof("Posting voucher: type:%s date:%s entries:%d", body.Type, body.Date, len(entries))

	voucher, err = controller.svc.CreateVoucher(c.Request().Context(), voucher, entries)
	if err != nil {
		if resp, ok := voucherErrorResponse(err); ok {
			c.Logger().Errorf("Rejected voucher: type:%s error: %v", body.Type, err)
			return c.JSON(resp.HttpStatusCode, resp)
		}
		c.Logger().Errorf("Failed to save voucher: type:%s error: %v", body.Type, err)
		return c.JSON(responses.SaveVoucherError.HttpStatusCode, responses.SaveVoucherError)
	}

	return c.JSON(http.StatusOK, &CreateVoucherResponseBody{
		ID:      voucher.ID,
		Number:  voucher.Number,
		Message: service.VoucherSavedMessage(voucher.Type),
	})
}

// voucherErrorResponse maps the service validation sentinels onto their
// client error responses. Anything unmapped is a persistence failure.
func voucherErrorResponse(err error) (responses.ErrorResponse, bool) {
	switch {
	case errors.Is(err, service.ErrUnknownVoucherType):
		return responses.UnknownVoucherTypeError, true
	case errors.Is(err, service.ErrUnbalancedVoucher):
		return responses.UnbalancedVoucherError, true
	case errors.Is(err, service.ErrTooFewEntries):
		return responses.TooFewEntriesError, true
	case errors.Is(err, service.ErrNegativeAmount), errors.Is(err, service.ErrBadEntryType):
		return responses.BadArgumentsError, true
	case errors.Is(err, service.ErrLedgerNotFound):
		return responses.LedgerNotFoundError, true
	case errors.Is(err, service.ErrDuplicateNumber):
		return responses.DuplicateVoucherNumberError, true
	}
	return responses.ErrorResponse{}, false
}

// GetVouchers godoc
// @Summary      List vouchers
// @Description  Returns the most recent vouchers, optionally filtered by type and date range
// @Accept       json
// @Produce      json
// @Tags         Voucher
// @Param        type  query     string  false  "Voucher type"
// @Param        from  query     string  false  "From date (YYYY-MM-DD)"
// @Param        to    query     string  false  "To date (YYYY-MM-DD)"
// @Success      200   {object}  []models.Voucher
// @Failure      500   {object}  responses.ErrorResponse
// @Router       /api/vouchers [get]
func (controller *VoucherController) GetVouchers(c echo.Context) error {
	var from, to time.Time
	var err error
	if c.QueryParams().Has("from") {
		from, err = time.Parse("2006-01-02", c.QueryParam("from"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
	}
	if c.QueryParams().Has("to") {
		to, err = time.Parse("2006-01-02", c.QueryParam("to"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
	}

	vouchers, err := controller.svc.VouchersFor(c.Request().Context(), c.QueryParam("type"), from, to)
	if err != nil {
		c.Logger().Errorf("Error fetching vouchers: %v", err)
		return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, vouchers)
}

// GetVoucher godoc
// @Summary      Get a voucher
// @Description  Retrieve one voucher with its entries
// @Accept       json
// @Produce      json
// @Tags         Voucher
// @Param        id   path      int  true  "Voucher ID"
// @Success      200  {object}  models.Voucher
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /api/vouchers/{id} [get]
func (controller *VoucherController) GetVoucher(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	voucher, err := controller.svc.FindVoucher(c.Request().Context(), id)
	// Probably we did not find the voucher
	if err != nil {
		c.Logger().Errorf("Invalid get voucher request id:%v", id)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.JSON(http.StatusOK, voucher)
}

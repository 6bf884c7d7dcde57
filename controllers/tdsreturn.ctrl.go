package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/ledgerhub/ledgerhub.go/lib/responses"
	"github.com/ledgerhub/ledgerhub.go/lib/service"
	"github.com/shopspring/decimal"
)

// TdsReturnController : Form 26Q submission controller struct
type TdsReturnController struct {
	svc *service.LedgerhubService
}

func NewTdsReturnController(svc *service.LedgerhubService) *TdsReturnController {
	return &TdsReturnController{svc: svc}
}

type DeductorDetails struct {
	Tan     string `json:"tan" validate:"required"`
	Pan     string `json:"pan"`
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type"`
	Address string `json:"address"`
}

type ChallanDetail struct {
	SerialNo    int             `json:"serialNo"`
	BsrCode     string          `json:"bsrCode"`
	ChallanNo   string          `json:"challanNo"`
	DepositDate string          `json:"depositDate" validate:"omitempty,datetime=2006-01-02"`
	TdsAmount   decimal.Decimal `json:"tdsAmount"`
	Surcharge   decimal.Decimal `json:"surcharge"`
	Cess        decimal.Decimal `json:"cess"`
	Interest    decimal.Decimal `json:"interest"`
	Fee         decimal.Decimal `json:"fee"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
}

type DeducteeDetail struct {
	SerialNo     int             `json:"serialNo"`
	Pan          string          `json:"pan"`
	Name         string          `json:"name" validate:"required"`
	SectionCode  string          `json:"sectionCode"`
	PaymentDate  string          `json:"paymentDate" validate:"omitempty,datetime=2006-01-02"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	TdsDeducted  decimal.Decimal `json:"tdsDeducted"`
	TdsDeposited decimal.Decimal `json:"tdsDeposited"`
}

type Verification struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Place       string `json:"place"`
}

type SubmitReturnRequestBody struct {
	DeductorDetails DeductorDetails  `json:"deductorDetails" validate:"required"`
	ChallanDetails  []ChallanDetail  `json:"challanDetails" validate:"dive"`
	DeducteeDetails []DeducteeDetail `json:"deducteeDetails" validate:"dive"`
	Verification    Verification     `json:"verification"`
	AssessmentYear  string           `json:"assessmentYear" validate:"required"`
	Quarter         string           `json:"quarter"`
}

type SubmitReturnResponseBody struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ReturnID int64  `json:"returnId"`
}

// SubmitReturn godoc
// @Summary      Submit a Form 26Q return
// @Description  Persists the return header, challans and deductees in one transaction
// @Accept       json
// @Produce      json
// @Tags         TdsReturn
// @Param        return  body      SubmitReturnRequestBody  True  "Return"
// @Success      200     {object}  SubmitReturnResponseBody
// @Failure      400     {object}  responses.ErrorResponse
// @Failure      500     {object}  responses.ErrorResponse
// @Router       /api/tds26q [post]
func (controller *TdsReturnController) SubmitReturn(c echo.Context) error {
	var body SubmitReturnRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load submit return request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid submit return request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	ret := &models.TdsReturn{
		Tan:                 body.DeductorDetails.Tan,
		Pan:                 body.DeductorDetails.Pan,
		DeductorName:        body.DeductorDetails.Name,
		DeductorType:        body.DeductorDetails.Type,
		DeductorAddress:     body.DeductorDetails.Address,
		AssessmentYear:      body.AssessmentYear,
		Quarter:             body.Quarter,
		VerifierName:        body.Verification.Name,
		VerifierDesignation: body.Verification.Designation,
		VerifiedAtPlace:     body.Verification.Place,
	}

	challans := make([]models.TdsChallan, len(body.ChallanDetails))
	for i, challan := range body.ChallanDetails {
		challans[i] = models.TdsChallan{
			SerialNo:    challan.SerialNo,
			BsrCode:     challan.BsrCode,
			ChallanNo:   challan.ChallanNo,
			DepositDate: parseFormDate(challan.DepositDate),
			TdsAmount:   challan.TdsAmount,
			Surcharge:   challan.Surcharge,
			Cess:        challan.Cess,
			Interest:    challan.Interest,
			Fee:         challan.Fee,
			Total:       challan.Total,
			Status:      challan.Status,
		}
	}
	deductees := make([]models.TdsDeductee, len(body.DeducteeDetails))
	for i, deductee := range body.DeducteeDetails {
		deductees[i] = models.TdsDeductee{
			SerialNo:     deductee.SerialNo,
			Pan:          deductee.Pan,
			Name:         deductee.Name,
			SectionCode:  deductee.SectionCode,
			PaymentDate:  parseFormDate(deductee.PaymentDate),
			AmountPaid:   deductee.AmountPaid,
			TdsDeducted:  deductee.TdsDeducted,
			TdsDeposited: deductee.TdsDeposited,
		}
	}

	c.Logger().Infof("Submitting 26Q return: tan:%s year:%s challans:%d deductees:%d",
		body.DeductorDetails.Tan, body.AssessmentYear, len(challans), len(deductees))

	ret, err := controller.svc.SubmitReturn(c.Request().Context(), ret, challans, deductees)
	if err != nil {
		c.Logger().Errorf("Failed to save 26Q return: tan:%s error: %v", body.DeductorDetails.Tan, err)
		return c.JSON(responses.SaveReturnError.HttpStatusCode, responses.SaveReturnError)
	}

	return c.JSON(http.StatusOK, &SubmitReturnResponseBody{
		Success:  true,
		Message:  "TDS return submitted successfully!",
		ReturnID: ret.ID,
	})
}

// GetReturnSummaries godoc
// @Summary      List return summaries
// @Description  Per-return deductee count and tax totals for one assessment year, newest first
// @Produce      json
// @Tags         TdsReturn
// @Param        year  query     string  true  "Assessment year"
// @Success      200   {object}  []service.ReturnSummary
// @Failure      400   {object}  responses.ErrorResponse
// @Failure      500   {object}  responses.ErrorResponse
// @Router       /api/tds26q [get]
func (controller *TdsReturnController) GetReturnSummaries(c echo.Context) error {
	year := c.QueryParam("year")
	// the mandatory filter is checked before any database work happens
	if year == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "'year' query parameter is required"})
	}

	summaries, err := controller.svc.ReturnSummariesFor(c.Request().Context(), year)
	if err != nil {
		c.Logger().Errorf("Error fetching return summaries: year:%s error: %v", year, err)
		return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, summaries)
}

// parseFormDate reads the YYYY-MM-DD dates the form sends; an empty or
// malformed value stays a zero time, persisted as NULL.
func parseFormDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

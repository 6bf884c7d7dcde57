package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/ledgerhub/ledgerhub.go/lib/responses"
	"github.com/ledgerhub/ledgerhub.go/lib/service"
	"github.com/stretchr/testify/assert"
)

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	var buf bytes.Buffer
	assert.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

func postVoucher(e *echo.Echo, t *testing.T, payload map[string]interface{}) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/vouchers", jsonBody(t, payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func voucherPayload(voucherType string, debit, credit string) map[string]interface{} {
	return map[string]interface{}{
		"type":      voucherType,
		"date":      "2026-04-01",
		"narration": "test posting",
		"entries": []map[string]interface{}{
			{"ledgerId": 1, "amount": debit, "type": "debit"},
			{"ledgerId": 2, "amount": credit, "type": "credit"},
		},
	}
}

func TestUnbalancedVoucherIsRejected(t *testing.T) {
	e, svc := newTestEcho()
	e.POST("/api/vouchers", NewVoucherController(svc).CreateVoucher)

	rec := postVoucher(e, t, voucherPayload("journal", "500", "400"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
}

func TestUnknownVoucherTypeIsRejected(t *testing.T) {
	e, svc := newTestEcho()
	e.POST("/api/vouchers", NewVoucherController(svc).CreateVoucher)

	rec := postVoucher(e, t, voucherPayload("invoice", "500", "500"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSingleLegVoucherIsRejected(t *testing.T) {
	e, svc := newTestEcho()
	e.POST("/api/vouchers", NewVoucherController(svc).CreateVoucher)

	rec := postVoucher(e, t, map[string]interface{}{
		"type": "journal",
		"date": "2026-04-01",
		"entries": []map[string]interface{}{
			{"ledgerId": 1, "amount": "500", "type": "debit"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNegativeAmountIsRejected(t *testing.T) {
	e, svc := newTestEcho()
	e.POST("/api/vouchers", NewVoucherController(svc).CreateVoucher)

	rec := postVoucher(e, t, voucherPayload("journal", "-500", "-500"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedVoucherDateIsRejected(t *testing.T) {
	e, svc := newTestEcho()
	e.POST("/api/vouchers", NewVoucherController(svc).CreateVoucher)

	rec := postVoucher(e, t, map[string]interface{}{
		"type": "journal",
		"date": "01/04/2026",
		"entries": []map[string]interface{}{
			{"ledgerId": 1, "amount": "500", "type": "debit"},
			{"ledgerId": 2, "amount": "500", "type": "credit"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadEntryTypeIsRejected(t *testing.T) {
	e, svc := newTestEcho()
	e.POST("/api/vouchers", NewVoucherController(svc).CreateVoucher)

	rec := postVoucher(e, t, map[string]interface{}{
		"type": "journal",
		"date": "2026-04-01",
		"entries": []map[string]interface{}{
			{"ledgerId": 1, "amount": "500", "type": "withdrawal"},
			{"ledgerId": 2, "amount": "500", "type": "credit"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDuplicateNumberMapsToClientError(t *testing.T) {
	resp, ok := voucherErrorResponse(service.ErrDuplicateNumber)

	assert.True(t, ok)
	assert.Equal(t, responses.DuplicateVoucherNumberError, resp)
	assert.Equal(t, http.StatusBadRequest, resp.HttpStatusCode)
}

func TestMalformedVoucherBodyIsRejected(t *testing.T) {
	e, svc := newTestEcho()
	e.POST("/api/vouchers", NewVoucherController(svc).CreateVoucher)

	req := httptest.NewRequest(http.MethodPost, "/api/vouchers", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

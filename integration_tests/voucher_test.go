package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ledgerhub/ledgerhub.go/common"
	"github.com/ledgerhub/ledgerhub.go/controllers"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/ledgerhub/ledgerhub.go/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type VoucherTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	service *service.LedgerhubService
	cash    *models.Ledger
	sales   *models.Ledger
}

func (suite *VoucherTestSuite) SetupSuite() {
	svc, err := LedgerhubTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc

	cash, sales, err := createTestLedgers(svc)
	if err != nil {
		log.Fatalf("Error creating test ledgers: %v", err)
	}
	suite.cash = cash
	suite.sales = sales

	suite.echo = newEcho()
	suite.echo.POST("/api/vouchers", controllers.NewVoucherController(svc).CreateVoucher)
	suite.echo.GET("/api/vouchers", controllers.NewVoucherController(svc).GetVouchers)
}

func (suite *VoucherTestSuite) TearDownTest() {
	assert.NoError(suite.T(), clearTable(suite.service, "voucher_entries"))
	assert.NoError(suite.T(), clearTable(suite.service, "vouchers"))
}

func (suite *VoucherTestSuite) TearDownSuite() {
	clearTable(suite.service, "ledgers")
	suite.service.DB.Close()
}

func (suite *VoucherTestSuite) postVoucher(payload map[string]interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(payload))
	req := httptest.NewRequest(http.MethodPost, "/api/vouchers", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *VoucherTestSuite) journalPayload(debit, credit float64) map[string]interface{} {
	return map[string]interface{}{
		"type":      "journal",
		"date":      "2026-04-01",
		"narration": "test journal entry",
		"entries": []map[string]interface{}{
			{"ledgerId": suite.cash.ID, "amount": debit, "type": "debit"},
			{"ledgerId": suite.sales.ID, "amount": credit, "type": "credit"},
		},
	}
}

func (suite *VoucherTestSuite) TestPostBalancedVoucher() {
	rec := suite.postVoucher(suite.journalPayload(500, 500))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(suite.T(), "Journal voucher saved successfully!", body["message"])

	ctx := context.Background()
	headerCount, err := suite.service.DB.NewSelect().Model((*models.Voucher)(nil)).Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, headerCount)

	entryCount, err := suite.service.DB.NewSelect().Model((*models.VoucherEntry)(nil)).Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, entryCount)
}

func (suite *VoucherTestSuite) TestUnbalancedVoucherPersistsNothing() {
	rec := suite.postVoucher(suite.journalPayload(500, 400))
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	ctx := context.Background()
	headerCount, err := suite.service.DB.NewSelect().Model((*models.Voucher)(nil)).Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, headerCount)

	entryCount, err := suite.service.DB.NewSelect().Model((*models.VoucherEntry)(nil)).Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, entryCount)
}

func (suite *VoucherTestSuite) TestDanglingLedgerRollsBackWholeVoucher() {
	payload := map[string]interface{}{
		"type": "journal",
		"date": "2026-04-01",
		"entries": []map[string]interface{}{
			{"ledgerId": suite.cash.ID, "amount": 500, "type": "debit"},
			{"ledgerId": 999999, "amount": 500, "type": "credit"},
		},
	}
	rec := suite.postVoucher(payload)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	// no header row without its entries
	ctx := context.Background()
	headerCount, err := suite.service.DB.NewSelect().Model((*models.Voucher)(nil)).Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, headerCount)
}

func (suite *VoucherTestSuite) TestConnectionsAreReturnedToPool() {
	before := suite.service.DB.DB.Stats().InUse

	suite.postVoucher(suite.journalPayload(500, 500))
	suite.postVoucher(suite.journalPayload(500, 400))

	assert.Equal(suite.T(), before, suite.service.DB.DB.Stats().InUse)
}

func (suite *VoucherTestSuite) TestAutoNumbering() {
	rec := suite.postVoucher(suite.journalPayload(100, 100))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	number, ok := body["number"].(string)
	assert.True(suite.T(), ok)
	assert.Regexp(suite.T(), `^JRN-\d{6}$`, number)
}

func (suite *VoucherTestSuite) TestExplicitNumberIsKept() {
	payload := suite.journalPayload(100, 100)
	payload["number"] = fmt.Sprintf("JV/%d/042", 2026)
	rec := suite.postVoucher(payload)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(suite.T(), "JV/2026/042", body["number"])
}

func (suite *VoucherTestSuite) TestDuplicateVoucherNumberIsRejected() {
	payload := suite.journalPayload(100, 100)
	payload["number"] = "JV/2026/777"
	assert.Equal(suite.T(), http.StatusOK, suite.postVoucher(payload).Code)

	rec := suite.postVoucher(payload)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(suite.T(), "a voucher with this number already exists", body["message"])

	ctx := context.Background()
	headerCount, err := suite.service.DB.NewSelect().Model((*models.Voucher)(nil)).Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, headerCount)
}

func (suite *VoucherTestSuite) TestLedgerBalanceAggregation() {
	rec := suite.postVoucher(suite.journalPayload(500, 500))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	balance, err := suite.service.LedgerBalanceFor(context.Background(), suite.cash.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "500", balance.TotalDebit.String())
	assert.Equal(suite.T(), "500", balance.ClosingBalance.String())

	balance, err = suite.service.LedgerBalanceFor(context.Background(), suite.sales.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "500", balance.TotalCredit.String())
	assert.Equal(suite.T(), "500", balance.ClosingBalance.String())
}

func (suite *VoucherTestSuite) TestVouchersListNewestFirst() {
	assert.Equal(suite.T(), http.StatusOK, suite.postVoucher(suite.journalPayload(100, 100)).Code)
	assert.Equal(suite.T(), http.StatusOK, suite.postVoucher(suite.journalPayload(200, 200)).Code)

	vouchers, err := suite.service.VouchersFor(context.Background(), common.VoucherTypeJournal, time.Time{}, time.Time{})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, len(vouchers))
	assert.Greater(suite.T(), vouchers[0].ID, vouchers[1].ID)
}

func TestVoucherSuite(t *testing.T) {
	if !testDBConfigured() {
		t.Skip("LEDGERHUB_TEST_DATABASE_URI not set, skipping integration tests")
	}
	suite.Run(t, new(VoucherTestSuite))
}

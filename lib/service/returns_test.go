package service

import (
	"testing"

	"github.com/ledgerhub/ledgerhub.go/common"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestChallanStatusDefaultsToDeposited(t *testing.T) {
	challans := []models.TdsChallan{
		{ChallanNo: "00123"},
		{ChallanNo: "00124", Status: "Pending"},
	}

	ApplyChallanDefaults(challans)

	assert.Equal(t, common.ChallanStatusDeposited, challans[0].Status)
	assert.Equal(t, "Pending", challans[1].Status)
}

func TestChallanSerialNumbersFollowSubmittedOrder(t *testing.T) {
	challans := []models.TdsChallan{
		{ChallanNo: "00123"},
		{ChallanNo: "00124"},
		{ChallanNo: "00125", SerialNo: 9},
	}

	ApplyChallanDefaults(challans)

	assert.Equal(t, 1, challans[0].SerialNo)
	assert.Equal(t, 2, challans[1].SerialNo)
	// an explicit serial number is kept
	assert.Equal(t, 9, challans[2].SerialNo)
}

func TestChallanAmountsDefaultToZero(t *testing.T) {
	challans := []models.TdsChallan{{ChallanNo: "00123"}}

	ApplyChallanDefaults(challans)

	assert.True(t, challans[0].TdsAmount.Equal(decimal.Zero))
	assert.True(t, challans[0].Interest.Equal(decimal.Zero))
	assert.True(t, challans[0].Fee.Equal(decimal.Zero))
}

func TestDeducteeSerialNoDefaultsToPosition(t *testing.T) {
	deductees := []models.TdsDeductee{
		{Name: "Acme Traders"},
		{Name: "Vendor Two"},
	}

	ApplyDeducteeDefaults(deductees)

	assert.Equal(t, 1, deductees[0].SerialNo)
	assert.Equal(t, 2, deductees[1].SerialNo)
}

func TestDeducteeExplicitSerialNoIsKept(t *testing.T) {
	deductees := []models.TdsDeductee{
		{Name: "Acme Traders", SerialNo: 7},
	}

	ApplyDeducteeDefaults(deductees)

	assert.Equal(t, 7, deductees[0].SerialNo)
}

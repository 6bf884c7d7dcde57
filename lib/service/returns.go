package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/ledgerhub/ledgerhub.go/common"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type ReturnSummary struct {
	ReturnID          int64           `json:"return_id" bun:"return_id"`
	Tan               string          `json:"tan" bun:"tan"`
	DeductorName      string          `json:"deductor_name" bun:"deductor_name"`
	AssessmentYear    string          `json:"assessment_year" bun:"assessment_year"`
	DeducteeCount     int             `json:"deductee_count" bun:"deductee_count"`
	TotalTdsDeducted  decimal.Decimal `json:"total_tds_deducted" bun:"total_tds_deducted"`
	TotalTdsDeposited decimal.Decimal `json:"total_tds_deposited" bun:"total_tds_deposited"`
	CreatedAt         time.Time       `json:"created_at" bun:"created_at"`
}

// SubmitReturn persists a Form 26Q submission: one return header, all
// challan rows and all deductee rows, in a single transaction. Any
// insert failure discards the entire submission.
func (svc *LedgerhubService) SubmitReturn(ctx context.Context, ret *models.TdsReturn, challans []models.TdsChallan, deductees []models.TdsDeductee) (*models.TdsReturn, error) {
	ApplyChallanDefaults(challans)
	ApplyDeducteeDefaults(deductees)

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(ret).Exec(ctx); err != nil {
			return err
		}
		if len(challans) > 0 {
			for i := range challans {
				challans[i].ReturnID = ret.ID
			}
			if _, err := tx.NewInsert().Model(&challans).Exec(ctx); err != nil {
				return err
			}
		}
		if len(deductees) > 0 {
			for i := range deductees {
				deductees[i].ReturnID = ret.ID
			}
			if _, err := tx.NewInsert().Model(&deductees).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ret.Challans = challans
	ret.Deductees = deductees
	return ret, nil
}

// ApplyChallanDefaults fills the defaults the form UI leaves blank: a
// missing status means the challan is already deposited, and serial
// numbers follow the submitted order. Missing amount fields stay at
// decimal zero.
func ApplyChallanDefaults(challans []models.TdsChallan) {
	for i := range challans {
		if challans[i].Status == "" {
			challans[i].Status = common.ChallanStatusDeposited
		}
		if challans[i].SerialNo == 0 {
			challans[i].SerialNo = i + 1
		}
	}
}

// ApplyDeducteeDefaults assigns the 1-based position as serial_no when
// the submission does not carry one.
func ApplyDeducteeDefaults(deductees []models.TdsDeductee) {
	for i := range deductees {
		if deductees[i].SerialNo == 0 {
			deductees[i].SerialNo = i + 1
		}
	}
}

// ReturnSummariesFor aggregates per-return totals for one assessment
// year: deductee count, summed tax deducted and summed tax deposited,
// most recent first.
func (svc *LedgerhubService) ReturnSummariesFor(ctx context.Context, assessmentYear string) ([]ReturnSummary, error) {
	summaries := []ReturnSummary{}

	err := svc.DB.NewSelect().
		TableExpr("tds_returns AS r").
		ColumnExpr("r.id AS return_id").
		ColumnExpr("r.tan, r.deductor_name, r.assessment_year, r.created_at").
		ColumnExpr("count(d.id) AS deductee_count").
		ColumnExpr("coalesce(sum(d.tds_deducted), 0) AS total_tds_deducted").
		ColumnExpr("coalesce(sum(d.tds_deposited), 0) AS total_tds_deposited").
		Join("LEFT JOIN tds_deductees AS d ON d.return_id = r.id").
		Where("r.assessment_year = ?", assessmentYear).
		GroupExpr("r.id").
		OrderExpr("r.created_at DESC").
		Scan(ctx, &summaries)
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

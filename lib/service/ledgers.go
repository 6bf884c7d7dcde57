package service

import (
	"context"

	"github.com/ledgerhub/ledgerhub.go/common"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/shopspring/decimal"
)

type LedgerBalance struct {
	LedgerID       int64           `json:"ledger_id"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	TotalDebit     decimal.Decimal `json:"total_debit"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

func (svc *LedgerhubService) CreateLedger(ctx context.Context, ledger *models.Ledger) (*models.Ledger, error) {
	if ledger.BalanceType == "" {
		ledger.BalanceType = common.BalanceTypeDebit
	}
	_, err := svc.DB.NewInsert().Model(ledger).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (svc *LedgerhubService) FindLedger(ctx context.Context, ledgerId int64) (*models.Ledger, error) {
	var ledger models.Ledger

	err := svc.DB.NewSelect().Model(&ledger).Where("id = ?", ledgerId).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (svc *LedgerhubService) Ledgers(ctx context.Context) ([]models.Ledger, error) {
	ledgers := []models.Ledger{}

	err := svc.DB.NewSelect().Model(&ledgers).OrderExpr("name ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return ledgers, nil
}

// LedgerBalanceFor folds the posted entry legs of one ledger into its
// opening balance. The aggregation happens in the database; only the
// two side totals come back.
func (svc *LedgerhubService) LedgerBalanceFor(ctx context.Context, ledgerId int64) (*LedgerBalance, error) {
	ledger, err := svc.FindLedger(ctx, ledgerId)
	if err != nil {
		return nil, err
	}

	var totals struct {
		TotalDebit  decimal.Decimal `bun:"total_debit"`
		TotalCredit decimal.Decimal `bun:"total_credit"`
	}
	err = svc.DB.NewSelect().
		Model((*models.VoucherEntry)(nil)).
		ColumnExpr("coalesce(sum(amount) FILTER (WHERE entry_type = ?), 0) AS total_debit", common.EntryTypeDebit).
		ColumnExpr("coalesce(sum(amount) FILTER (WHERE entry_type = ?), 0) AS total_credit", common.EntryTypeCredit).
		Where("ledger_id = ?", ledgerId).
		Scan(ctx, &totals)
	if err != nil {
		return nil, err
	}

	balance := &LedgerBalance{
		LedgerID:       ledger.ID,
		OpeningBalance: ledger.OpeningBalance,
		TotalDebit:     totals.TotalDebit,
		TotalCredit:    totals.TotalCredit,
	}
	// a debit-type ledger grows with debits, a credit-type one with credits
	if ledger.BalanceType == common.BalanceTypeCredit {
		balance.ClosingBalance = ledger.OpeningBalance.Add(totals.TotalCredit).Sub(totals.TotalDebit)
	} else {
		balance.ClosingBalance = ledger.OpeningBalance.Add(totals.TotalDebit).Sub(totals.TotalCredit)
	}
	return balance, nil
}

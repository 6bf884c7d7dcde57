package service

import (
	"github.com/ledgerhub/ledgerhub.go/common"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/shopspring/decimal"
)

// EntryTotals carries the two sides of a voucher summed separately.
type EntryTotals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// IsBalanced reports whether total debits equal total credits exactly.
// Amounts are decimals, so no epsilon is involved.
func (t EntryTotals) IsBalanced() bool {
	return t.Debit.Equal(t.Credit)
}

// SumEntries computes the debit and credit totals of a set of entry legs.
// Pure computation, it never errors; unknown entry types contribute to
// neither side and are caught by ValidateEntries instead.
func SumEntries(entries []models.VoucherEntry) EntryTotals {
	totals := EntryTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, entry := range entries {
		switch entry.EntryType {
		case common.EntryTypeDebit:
			totals.Debit = totals.Debit.Add(entry.Amount)
		case common.EntryTypeCredit:
			totals.Credit = totals.Credit.Add(entry.Amount)
		}
	}
	return totals
}

// ValidateEntries enforces the structural rules for a postable voucher:
// at least one debit and one credit leg, no negative amounts and the
// double-entry balance invariant. A voucher failing any of these is
// rejected before a single row is written.
func ValidateEntries(entries []models.VoucherEntry) error {
	if len(entries) < 2 {
		return ErrTooFewEntries
	}
	debits, credits := 0, 0
	for _, entry := range entries {
		switch entry.EntryType {
		case common.EntryTypeDebit:
			debits++
		case common.EntryTypeCredit:
			credits++
		default:
			return ErrBadEntryType
		}
		if entry.Amount.IsNegative() {
			return ErrNegativeAmount
		}
	}
	if debits == 0 || credits == 0 {
		return ErrTooFewEntries
	}
	if !SumEntries(entries).IsBalanced() {
		return ErrUnbalancedVoucher
	}
	return nil
}

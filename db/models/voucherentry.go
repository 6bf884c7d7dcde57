package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherEntry : one debit or credit leg of a voucher
type VoucherEntry struct {
	ID        int64           `json:"id" bun:",pk,autoincrement"`
	VoucherID int64           `json:"voucher_id" bun:",notnull"`
	Voucher   *Voucher        `json:"-" bun:"rel:belongs-to,join:voucher_id=id"`
	LedgerID  int64           `json:"ledger_id" bun:",notnull"`
	Ledger    *Ledger         `json:"-" bun:"rel:belongs-to,join:ledger_id=id"`
	Amount    decimal.Decimal `json:"amount" bun:"type:numeric(18,2),notnull"`
	EntryType string          `json:"entry_type" bun:",notnull"`
	CreatedAt time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}

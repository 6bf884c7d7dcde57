package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TdsDeductee : party from whom tax was withheld, attached to a return
type TdsDeductee struct {
	ID           int64           `json:"id" bun:",pk,autoincrement"`
	ReturnID     int64           `json:"return_id" bun:",notnull"`
	Return       *TdsReturn      `json:"-" bun:"rel:belongs-to,join:return_id=id"`
	SerialNo     int             `json:"serial_no" bun:",notnull"`
	Pan          string          `json:"pan" bun:",nullzero"`
	Name         string          `json:"name" bun:",notnull"`
	SectionCode  string          `json:"section_code" bun:",nullzero"`
	PaymentDate  time.Time       `json:"payment_date" bun:",nullzero"`
	AmountPaid   decimal.Decimal `json:"amount_paid" bun:"type:numeric(18,2),notnull,default:0"`
	TdsDeducted  decimal.Decimal `json:"tds_deducted" bun:"type:numeric(18,2),notnull,default:0"`
	TdsDeposited decimal.Decimal `json:"tds_deposited" bun:"type:numeric(18,2),notnull,default:0"`
	CreatedAt    time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TdsChallan : tax-deposit receipt row attached to a return
type TdsChallan struct {
	ID          int64           `json:"id" bun:",pk,autoincrement"`
	ReturnID    int64           `json:"return_id" bun:",notnull"`
	Return      *TdsReturn      `json:"-" bun:"rel:belongs-to,join:return_id=id"`
	SerialNo    int             `json:"serial_no" bun:",notnull"`
	BsrCode     string          `json:"bsr_code" bun:",nullzero"`
	ChallanNo   string          `json:"challan_no" bun:",nullzero"`
	DepositDate time.Time       `json:"deposit_date" bun:",nullzero"`
	TdsAmount   decimal.Decimal `json:"tds_amount" bun:"type:numeric(18,2),notnull,default:0"`
	Surcharge   decimal.Decimal `json:"surcharge" bun:"type:numeric(18,2),notnull,default:0"`
	Cess        decimal.Decimal `json:"cess" bun:"type:numeric(18,2),notnull,default:0"`
	Interest    decimal.Decimal `json:"interest" bun:"type:numeric(18,2),notnull,default:0"`
	Fee         decimal.Decimal `json:"fee" bun:"type:numeric(18,2),notnull,default:0"`
	Total       decimal.Decimal `json:"total" bun:"type:numeric(18,2),notnull,default:0"`
	Status      string          `json:"status" bun:",notnull,default:'Deposited'"`
	CreatedAt   time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}

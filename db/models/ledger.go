package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Ledger : Ledger account Model
type Ledger struct {
	ID             int64           `json:"id" bun:",pk,autoincrement"`
	Name           string          `json:"name" bun:",notnull,unique" validate:"required"`
	GroupID        int64           `json:"group_id" bun:",nullzero"`
	OpeningBalance decimal.Decimal `json:"opening_balance" bun:"type:numeric(18,2),notnull,default:0"`
	BalanceType    string          `json:"balance_type" bun:",notnull,default:'debit'"`
	CreatedAt      time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt      bun.NullTime    `json:"updated_at"`
}

func (l *Ledger) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		l.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Ledger)(nil)

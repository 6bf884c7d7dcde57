package models

import (
	"time"
)

// Voucher : Voucher header Model
//
// A voucher is the header of one double-entry posting. Its entries are
// owned exclusively by the voucher and are written in the same database
// transaction; once committed a voucher is append-only.
type Voucher struct {
	ID        int64     `json:"id" bun:",pk,autoincrement"`
	Type      string    `json:"type" bun:",notnull"`
	Number    string    `json:"number" bun:",nullzero,unique"`
	Date      time.Time `json:"date" bun:",notnull"`
	Narration string    `json:"narration" bun:",nullzero"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`

	Entries []VoucherEntry `json:"entries" bun:"rel:has-many,join:id=voucher_id"`
}

package models

// VoucherSequence : per-type counter backing voucher auto-numbering.
// The row is bumped inside the posting transaction, so a rollback also
// releases the number and committed numbers stay gapless.
type VoucherSequence struct {
	VoucherType string `bun:",pk"`
	LastNumber  int64  `bun:",notnull,default:0"`
}

package common

const (
	VoucherTypePayment      = "payment"
	VoucherTypeReceipt      = "receipt"
	VoucherTypeContra       = "contra"
	VoucherTypeJournal      = "journal"
	VoucherTypeSales        = "sales"
	VoucherTypePurchase     = "purchase"
	VoucherTypeDebitNote    = "debit-note"
	VoucherTypeCreditNote   = "credit-note"
	VoucherTypeStockJournal = "stock-journal"
	VoucherTypeDeliveryNote = "delivery-note"

	EntryTypeDebit  = "debit"
	EntryTypeCredit = "credit"

	BalanceTypeDebit  = "debit"
	BalanceTypeCredit = "credit"

	ChallanStatusDeposited = "Deposited"
)

// VoucherNumberPrefixes maps each voucher type to the prefix used when a
// voucher number is auto-assigned from the per-type sequence.
var VoucherNumberPrefixes = map[string]string{
	VoucherTypePayment:      "PAY",
	VoucherTypeReceipt:      "RCT",
	VoucherTypeContra:       "CON",
	VoucherTypeJournal:      "JRN",
	VoucherTypeSales:        "SAL",
	VoucherTypePurchase:     "PUR",
	VoucherTypeDebitNote:    "DBN",
	VoucherTypeCreditNote:   "CRN",
	VoucherTypeStockJournal: "STJ",
	VoucherTypeDeliveryNote: "DLV",
}

// IsVoucherType reports whether t is one of the supported voucher types.
func IsVoucherType(t string) bool {
	_, ok := VoucherNumberPrefixes[t]
	return ok
}

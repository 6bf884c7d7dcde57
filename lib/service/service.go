package service

import (
	"errors"

	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// Validation failures the controllers map to 400 responses. Anything
// else coming out of the service layer is a persistence failure and is
// reported as a generic 500 with the detail kept in the server log.
var (
	ErrUnknownVoucherType = errors.New("unknown voucher type")
	ErrTooFewEntries      = errors.New("voucher needs at least two entries")
	ErrNegativeAmount     = errors.New("entry amount must not be negative")
	ErrBadEntryType       = errors.New("entry type must be debit or credit")
	ErrUnbalancedVoucher  = errors.New("voucher entries do not balance")
	ErrLedgerNotFound     = errors.New("ledger not found")
	ErrDuplicateNumber    = errors.New("voucher number already exists")
)

type LedgerhubService struct {
	Config *Config
	DB     *bun.DB
	Logger *lecho.Logger
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerhub/ledgerhub.go/common"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// CreateVoucher posts a voucher and all of its entry legs atomically.
// The header insert, the optional sequence bump for auto-numbering and
// the bulk entry insert share one transaction: on any failure the whole
// posting rolls back and zero rows persist. RunInTx returns the pooled
// connection on every exit path.
func (svc *LedgerhubService) CreateVoucher(ctx context.Context, voucher *models.Voucher, entries []models.VoucherEntry) (*models.Voucher, error) {
	if !common.IsVoucherType(voucher.Type) {
		return nil, ErrUnknownVoucherType
	}
	if err := ValidateEntries(entries); err != nil {
		return nil, err
	}

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := svc.checkLedgersExist(ctx, tx, entries); err != nil {
			return err
		}
		if voucher.Number == "" {
			number, err := svc.nextVoucherNumber(ctx, tx, voucher.Type)
			if err != nil {
				return err
			}
			voucher.Number = number
		}
		if _, err := tx.NewInsert().Model(voucher).Exec(ctx); err != nil {
			// the only unique column on the header is the number
			if isUniqueViolation(err) {
				return ErrDuplicateNumber
			}
			return err
		}
		for i := range entries {
			entries[i].VoucherID = voucher.ID
		}
		if _, err := tx.NewInsert().Model(&entries).Exec(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	voucher.Entries = entries
	return voucher, nil
}

// checkLedgersExist verifies every referenced ledger before writing the
// header, so a dangling ledger id surfaces as a validation failure
// instead of a foreign key violation.
func (svc *LedgerhubService) checkLedgersExist(ctx context.Context, tx bun.Tx, entries []models.VoucherEntry) error {
	ledgerIds := make(map[int64]struct{}, len(entries))
	for _, entry := range entries {
		ledgerIds[entry.LedgerID] = struct{}{}
	}
	ids := make([]int64, 0, len(ledgerIds))
	for id := range ledgerIds {
		ids = append(ids, id)
	}
	count, err := tx.NewSelect().Model((*models.Ledger)(nil)).Where("id IN (?)", bun.In(ids)).Count(ctx)
	if err != nil {
		return err
	}
	if count != len(ids) {
		return ErrLedgerNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

// nextVoucherNumber bumps the per-type sequence row inside the posting
// transaction and formats the assigned number, e.g. "JRN-000042".
func (svc *LedgerhubService) nextVoucherNumber(ctx context.Context, tx bun.Tx, voucherType string) (string, error) {
	seq := models.VoucherSequence{VoucherType: voucherType, LastNumber: 1}
	_, err := tx.NewInsert().
		Model(&seq).
		On("CONFLICT (voucher_type) DO UPDATE").
		Set("last_number = voucher_sequence.last_number + 1").
		Returning("last_number").
		Exec(ctx)
	if err != nil {
		return "", err
	}
	return FormatVoucherNumber(voucherType, seq.LastNumber), nil
}

// FormatVoucherNumber renders an auto-assigned voucher number from the
// type prefix and a sequence value.
func FormatVoucherNumber(voucherType string, n int64) string {
	return fmt.Sprintf("%s-%06d", common.VoucherNumberPrefixes[voucherType], n)
}

// VoucherSavedMessage is the confirmation shown to the user after a
// successful posting, e.g. "Payment voucher saved successfully!".
func VoucherSavedMessage(voucherType string) string {
	display := voucherType
	if display != "" {
		display = strings.ToUpper(display[:1]) + display[1:]
	}
	return fmt.Sprintf("%s voucher saved successfully!", display)
}

func (svc *LedgerhubService) FindVoucher(ctx context.Context, voucherId int64) (*models.Voucher, error) {
	var voucher models.Voucher

	err := svc.DB.NewSelect().
		Model(&voucher).
		Relation("Entries").
		Where("voucher.id = ?", voucherId).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

// VouchersFor returns the most recent vouchers, optionally filtered by
// type and date range, newest first.
func (svc *LedgerhubService) VouchersFor(ctx context.Context, voucherType string, from, to time.Time) ([]models.Voucher, error) {
	vouchers := []models.Voucher{}

	query := svc.DB.NewSelect().Model(&vouchers).Relation("Entries")
	if voucherType != "" {
		query.Where("voucher.type = ?", voucherType)
	}
	if !from.IsZero() {
		query.Where("voucher.date >= ?", from)
	}
	if !to.IsZero() {
		query.Where("voucher.date <= ?", to)
	}
	query.OrderExpr("voucher.id DESC").Limit(100)
	err := query.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return vouchers, nil
}

package migrations

import (
	"context"

	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/uptrace/bun"
)

/* Since this init will reflect the latest model fields when run on fresh db
make sure that when you add/remove columns in subsequent migrations IfNotExists/IfExists is used
otherwise it's going to result in errors.
*/
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().Model((*models.Ledger)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Voucher)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.VoucherEntry)(nil)).WithForeignKeys().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.VoucherSequence)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.TdsReturn)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.TdsChallan)(nil)).WithForeignKeys().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.TdsDeductee)(nil)).WithForeignKeys().Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}

package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- entry legs carry non-negative amounts on one of the two sides
				ALTER TABLE voucher_entries
				ADD CONSTRAINT check_entry_type
				CHECK (entry_type IN ('debit', 'credit'));

				ALTER TABLE voucher_entries
				ADD CONSTRAINT check_entry_amount
				CHECK (amount >= 0);

			-- make sure every committed voucher balances: total debits = total credits
				CREATE OR REPLACE FUNCTION check_voucher_balance()
					RETURNS TRIGGER AS $$
				DECLARE
					debit_total NUMERIC;
					credit_total NUMERIC;
				BEGIN
					SELECT INTO debit_total COALESCE(SUM(amount), 0)
					FROM voucher_entries
					WHERE voucher_id = NEW.voucher_id AND entry_type = 'debit';

					SELECT INTO credit_total COALESCE(SUM(amount), 0)
					FROM voucher_entries
					WHERE voucher_id = NEW.voucher_id AND entry_type = 'credit';

					IF debit_total <> credit_total
					THEN
						RAISE EXCEPTION 'unbalanced voucher [voucher_id:%] debit [%] credit [%]',
						NEW.voucher_id,
						debit_total,
						credit_total;
					END IF;
					RETURN NEW;
				END;
				$$ LANGUAGE plpgsql;

				-- deferred to commit time: the legs of one voucher are inserted in
				-- a single statement inside the posting transaction, the sums are
				-- only meaningful once all of them are in
				CREATE CONSTRAINT TRIGGER check_voucher_balance
				AFTER INSERT OR UPDATE ON voucher_entries
				DEFERRABLE INITIALLY DEFERRED
				FOR EACH ROW EXECUTE PROCEDURE check_voucher_balance();
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}

package integration_tests

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ledgerhub/ledgerhub.go/common"
	"github.com/ledgerhub/ledgerhub.go/db"
	"github.com/ledgerhub/ledgerhub.go/db/migrations"
	"github.com/ledgerhub/ledgerhub.go/db/models"
	"github.com/ledgerhub/ledgerhub.go/lib"
	"github.com/ledgerhub/ledgerhub.go/lib/logging"
	"github.com/ledgerhub/ledgerhub.go/lib/responses"
	"github.com/ledgerhub/ledgerhub.go/lib/service"
	"github.com/uptrace/bun/migrate"
)

// LedgerhubTestServiceInit connects to the test database named by
// LEDGERHUB_TEST_DATABASE_URI and migrates it. Suites skip themselves
// when the variable is unset so the integration tests are a no-op on
// machines without a database.
func LedgerhubTestServiceInit() (svc *service.LedgerhubService, err error) {
	dbUri := os.Getenv("LEDGERHUB_TEST_DATABASE_URI")
	c := &service.Config{
		DatabaseUri:             dbUri,
		DatabaseMaxConns:        1,
		DatabaseMaxIdleConns:    1,
		DatabaseConnMaxLifetime: 10,
	}

	dbConn, err := db.Open(c)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	_, err = migrator.Migrate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	svc = &service.LedgerhubService{
		Config: c,
		DB:     dbConn,
		Logger: logging.Logger(""),
	}
	return svc, nil
}

func testDBConfigured() bool {
	return os.Getenv("LEDGERHUB_TEST_DATABASE_URI") != ""
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	return e
}

func clearTable(svc *service.LedgerhubService, tableName string) error {
	_, err := svc.DB.NewTruncateTable().Table(tableName).Cascade().Exec(context.Background())
	return err
}

func createTestLedgers(svc *service.LedgerhubService) (cash *models.Ledger, sales *models.Ledger, err error) {
	cash, err = svc.CreateLedger(context.Background(), &models.Ledger{
		Name:        "Cash",
		BalanceType: common.BalanceTypeDebit,
	})
	if err != nil {
		return nil, nil, err
	}
	sales, err = svc.CreateLedger(context.Background(), &models.Ledger{
		Name:        "Sales",
		BalanceType: common.BalanceTypeCredit,
	})
	if err != nil {
		return nil, nil, err
	}
	return cash, sales, nil
}

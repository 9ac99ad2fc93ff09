//go:build integration

package iotesting

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gnames/squadcheck/pkg/config"
	"github.com/gnames/squadcheck/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// TestDatabaseName is the database created in the test container.
	TestDatabaseName = "squadcheck_test"
	testUser         = "test_user"
	testPassword     = "test"
)

// StartPostgres starts a PostgreSQL container for the test and returns
// settings to connect to it. The container is terminated when the test
// finishes.
func StartPostgres(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(TestDatabaseName),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate PostgreSQL container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get PostgreSQL connection string: %v", err)
	}
	connCfg, err := pgx.ParseConfig(url)
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", url, err)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("postgres"),
		config.OptDatabaseHost(connCfg.Host),
		config.OptDatabasePort(int(connCfg.Port)),
		config.OptDatabaseUser(connCfg.User),
		config.OptDatabasePassword(connCfg.Password),
		config.OptDatabaseDatabase(connCfg.Database),
		config.OptDatabaseSSLMode("disable"),
	})
	return &cfg.Database
}

// SeedPostgres creates the schema with GORM AutoMigrate and inserts the
// fixture. Tables listed in fx.Omit are not created.
func SeedPostgres(t *testing.T, cfg *config.DatabaseConfig, fx Fixture) {
	t.Helper()

	gormDB, err := gorm.Open(
		gormpg.Open(postgresDSN(cfg)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("Failed to open GORM connection: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	var models []any
	for _, m := range schema.AllModels() {
		tm := m.(interface{ TableName() string })
		if fx.Creates(tm.TableName()) {
			models = append(models, m)
		}
	}
	if err = gormDB.AutoMigrate(models...); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	// rows of omitted tables are not seeded
	create := func(table string, v any, n int) {
		t.Helper()
		if n == 0 || !fx.Creates(table) {
			return
		}
		if err := gormDB.Create(v).Error; err != nil {
			t.Fatalf("Failed to seed fixture: %v", err)
		}
	}
	create(schema.TablePlayers, &fx.Players, len(fx.Players))
	create(schema.TableMatches, &fx.Matches, len(fx.Matches))
	create(schema.TableAppearances, &fx.Appearances, len(fx.Appearances))
	create(schema.TableStaff, &fx.Staff, len(fx.Staff))

	for _, q := range fx.ExtraSQL {
		if err = gormDB.Exec(q).Error; err != nil {
			t.Fatalf("Failed to run %q: %v", q, err)
		}
	}
}

func postgresDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)
}

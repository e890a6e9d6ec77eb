package database

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"treasury/internal/config"
	"treasury/internal/logger"
)

//go:embed migrations
var migrationsFS embed.FS

// Manager owns the SQL connection behind the key-value table.
type Manager struct {
	db     *gorm.DB
	driver string
	url    string
}

// NewManager opens the database selected by cfg.StorageDriver, which must be
// sqlite or postgres.
func NewManager(cfg *config.Config) (*Manager, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying DB: %w", err)
		}
		// SQLite allows one writer at a time
		sqlDB.SetMaxOpenConns(1)
		return &Manager{db: db, driver: "sqlite", url: "sqlite3://" + cfg.SQLitePath}, nil

	case config.DriverPostgres:
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true,
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
		return &Manager{db: db, driver: "postgres", url: cfg.PostgresURL()}, nil
	}

	return nil, fmt.Errorf("storage driver %q is not backed by a SQL database", cfg.StorageDriver)
}

// newMigrate builds a migrate instance reading the embedded SQL for the
// manager's driver. It uses its own connection, so closing it leaves the
// gorm pool open.
func (m *Manager) newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations/"+m.driver)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.url)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

func closeMigrate(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// RunMigrations applies every pending migration.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")
	mig, err := m.newMigrate()
	if err != nil {
		return err
	}
	defer closeMigrate(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// RollbackMigrations reverts the given number of migrations.
func (m *Manager) RollbackMigrations(steps int) error {
	mig, err := m.newMigrate()
	if err != nil {
		return err
	}
	defer closeMigrate(mig)

	if err := mig.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// MigrationVersion reports the applied version and whether it is dirty.
func (m *Manager) MigrationVersion() (uint, bool, error) {
	mig, err := m.newMigrate()
	if err != nil {
		return 0, false, err
	}
	defer closeMigrate(mig)

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return version, dirty, nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

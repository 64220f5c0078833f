package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"clinical-notes-be/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func getLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true, // keep clinical text out of the SQL log
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY on the local file
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		return nil
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite, "":
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// NewGormDB opens the notes database. dsn is a file path (or sqlite URI) for
// sqlite and a libpq connection string for postgres.
func NewGormDB(driver, dsn string) (*gorm.DB, error) {
	return open(driver, dsn, logger.Warn)
}

// NewSilentGormDB is NewGormDB without SQL logging.
func NewSilentGormDB(driver, dsn string) (*gorm.DB, error) {
	return open(driver, dsn, logger.Silent)
}

func open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: getLogger(level),
	})
	if err != nil {
		return nil, err
	}

	if driver == "" {
		driver = DriverSQLite
	}
	if err := configureConnectionPool(db, driver); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the notes table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Note{})
}

package kv

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/familycar/datastore/config"
)

// kvEntry is the single table the sql driver maintains: one row per key,
// the full JSON document in value.
type kvEntry struct {
	Key   string `gorm:"column:key;primaryKey;size:255"`
	Value string `gorm:"column:value;type:text"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// sqlMedium stores keys in a relational table via GORM.
type sqlMedium struct {
	db *gorm.DB
}

// NewSQL opens the configured database (DB_DRIVER / DATABASE_DSN),
// configures the connection pool and migrates the kv_entries table.
func NewSQL() (Medium, error) {
	driver := config.DatabaseDriver()
	dsn := config.DatabaseDSN()

	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("kv/sql: build dialector: %w", err)
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // use pkg/logger, not GORM's own
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("kv/sql: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("kv/sql: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("kv/sql: ping: %w", err)
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("kv/sql: migrate: %w", err)
	}

	return &sqlMedium{db: db}, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

func (d *sqlMedium) Get(key string) (string, bool, error) {
	var entry kvEntry
	err := d.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv/sql: get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (d *sqlMedium) Set(key, value string) error {
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&kvEntry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("kv/sql: set %s: %w", key, err)
	}
	return nil
}

func (d *sqlMedium) Remove(key string) error {
	if err := d.db.Delete(&kvEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("kv/sql: remove %s: %w", key, err)
	}
	return nil
}

func (d *sqlMedium) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/config"
	"gorm.io/gorm"
)

// OpenTest returns a migrated in-memory SQLite database private to the test.
func OpenTest(tb testing.TB) *gorm.DB {
	tb.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	path := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, uuid.NewString())
	db, err := Open(config.Database{Driver: DriverSQLite, Path: path})
	if err != nil {
		tb.Fatalf("open test database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		tb.Fatalf("migrate test database: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/cloudadopt/cloudadopt-backend/internal/data/db"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logg, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return logg
}

// DB opens a private in-memory SQLite database with the full schema migrated.
// Each call gets its own database, so tests may run in parallel.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:cloudadopt_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	svc, err := db.Open(Logger(tb), db.DriverSQLite, dsn)
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	tb.Cleanup(func() {
		_ = svc.Close()
	})
	return svc.DB()
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

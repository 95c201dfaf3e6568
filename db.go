package main

import (
	"context"
	"os"
	"strings"
	"time"

	"ecgtrack/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// queryTimeout bounds every store call so a slow query cannot pin a pool
// connection indefinitely. Success-path responses are unaffected.
const queryTimeout = 10 * time.Second

// initDB opens the Postgres pool from DB_DSN. A missing or unreachable DSN is
// not fatal: the process starts with a nil handle and every data-dependent
// route degrades to a uniform "database not configured" failure while /health
// keeps answering.
func initDB() {
	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		log.Warn("DB_DSN is not set; data endpoints will report storage unavailable")
		return
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Error("failed to connect postgres database; data endpoints degraded")
		return
	}
	db = gdb
	migrateDB()
}

// migrateDB migrates models individually so a failure on one doesn't block
// others. The unique index on users.username created here is the actual
// enforcement point for username uniqueness; the handler pre-check only
// provides the friendly error message.
func migrateDB() {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.WithError(err).Warn("migration warning (users)")
	}
	if err := db.AutoMigrate(&models.EcgResult{}); err != nil {
		log.WithError(err).Warn("migration warning (ecg_results)")
	}
}

// conn is the scoped acquisition point for the persistence gateway: it hands
// out a context-bound session or reports the store as unavailable. Connection
// checkout and release are owned by the pool on every exit path.
func conn(ctx context.Context) (*gorm.DB, error) {
	if db == nil {
		return nil, &StorageUnavailableError{Reason: "database not configured"}
	}
	return db.WithContext(ctx), nil
}

// requestCtx derives the bounded context used for a single handler's store
// calls.
func requestCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, queryTimeout)
}

// databaseHealth reports store connectivity, computed synchronously on demand
// by acquiring and releasing a connection. No background status flag.
func databaseHealth() string {
	if db == nil {
		return "not_configured"
	}
	sqlDB, err := db.DB()
	if err != nil {
		return "error"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return "error"
	}
	return "connected"
}

// uniqueViolation reports whether err is a unique-constraint failure from the
// store. Covers Postgres wording plus SQLite's, which the tests run against.
func uniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "UNIQUE constraint") ||
		strings.Contains(s, "already exists")
}

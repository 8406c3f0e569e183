package store

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnParams identifies a Postgres database by its connection parts.
type ConnParams struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN renders the parameters as a connection string for the named database.
func (p ConnParams) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Name)
}

// AdminDSN targets the maintenance database, where create/drop statements
// for the named database must run.
func (p ConnParams) AdminDSN() string {
	admin := p
	admin.Name = "postgres"
	return admin.DSN()
}

// EnsureDatabase creates the database when absent. An already-existing
// database is success. Failures are logged and returned; the caller decides
// whether to continue.
func EnsureDatabase(params ConnParams) error {
	db, err := gorm.Open(postgres.Open(params.AdminDSN()), &gorm.Config{})
	if err != nil {
		slog.Error("ensure database: connect", "db", params.Name, "err", err)
		return fmt.Errorf("ensure database %s: %w", params.Name, err)
	}
	defer closeDB(db)

	if err := db.Exec("CREATE DATABASE " + quoteIdent(params.Name)).Error; err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return nil
		}
		slog.Error("ensure database: create", "db", params.Name, "err", err)
		return fmt.Errorf("ensure database %s: %w", params.Name, err)
	}
	return nil
}

// DropDatabase removes the database, best-effort. Used by integration test
// teardown.
func DropDatabase(params ConnParams) {
	db, err := gorm.Open(postgres.Open(params.AdminDSN()), &gorm.Config{})
	if err != nil {
		slog.Warn("drop database: connect", "db", params.Name, "err", err)
		return
	}
	defer closeDB(db)

	if err := db.Exec("DROP DATABASE IF EXISTS " + quoteIdent(params.Name)).Error; err != nil {
		slog.Warn("drop database", "db", params.Name, "err", err)
	}
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

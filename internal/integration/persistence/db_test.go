package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// openTestDB opens a private in-memory sqlite database migrated with the
// application models. Each test gets its own database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { _ = dbSQL.Close() })

	if err := db.AutoMigrate(&model.UserModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id int64) {
	t.Helper()
	user := &entity.User{
		ID:           id,
		Name:         "Test User",
		Email:        fmt.Sprintf("user-%d@example.com", id),
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %d: %v", id, err)
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTransaction(t *testing.T, userID int64, title, amount, category string, date time.Time) *entity.Transaction {
	t.Helper()
	return &entity.Transaction{
		UserID:   userID,
		Title:    title,
		Amount:   mustDecimal(t, amount),
		Category: category,
		Date:     date,
	}
}

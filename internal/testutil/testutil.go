package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/booklend/library-api/internal/model"
)

// NewTestDB opens a fresh in-memory sqlite database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Book{}, &model.Borrow{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// SeedBook inserts a book with the given stock.
func SeedBook(t *testing.T, db *gorm.DB, title, author string, copies int) *model.Book {
	t.Helper()

	book := &model.Book{
		Title:  title,
		Author: author,
		Copies: copies,
	}
	if err := db.Create(book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return book
}

// SeedBorrow inserts a loan record directly, bypassing the borrow transaction.
func SeedBorrow(t *testing.T, db *gorm.DB, bookID uuid.UUID, borrower string, quantity int) *model.Borrow {
	t.Helper()

	borrow := &model.Borrow{
		BookID:       bookID,
		BorrowerName: borrower,
		Quantity:     quantity,
		DueDate:      time.Now().UTC().Add(14 * 24 * time.Hour),
	}
	if err := db.Create(borrow).Error; err != nil {
		t.Fatalf("failed to seed borrow for book %s: %v", bookID, err)
	}
	return borrow
}

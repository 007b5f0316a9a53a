package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/booklend/library-api/internal/model"
	"github.com/booklend/library-api/internal/testutil"
)

func dueDate() string {
	return time.Now().UTC().Add(14 * 24 * time.Hour).Format("2006-01-02")
}

func TestBorrowBook_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)

	w := doJSON(t, router, http.MethodPost, "/api/borrows/"+book.ID.String(), map[string]any{
		"quantity":     2,
		"dueDate":      dueDate(),
		"borrowerName": "Paul",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp BorrowResponse
	decodeJSON(t, w, &resp)

	if !resp.Success {
		t.Errorf("expected success=true")
	}
	if resp.Data.BookID != book.ID {
		t.Errorf("expected bookId %s, got %s", book.ID, resp.Data.BookID)
	}
	if resp.Data.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", resp.Data.Quantity)
	}
	if resp.Data.Returned {
		t.Errorf("expected returned=false on a fresh borrow")
	}

	var stored model.Book
	if err := db.First(&stored, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("expected book in db, got error: %v", err)
	}
	if stored.Copies != 1 {
		t.Errorf("expected copies 1 after borrowing 2 of 3, got %d", stored.Copies)
	}
	if !stored.Available {
		t.Errorf("expected book to stay available with 1 copy left")
	}
}

func TestBorrowBook_InsufficientCopies(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)

	w := doJSON(t, router, http.MethodPost, "/api/borrows/"+book.ID.String(), map[string]any{
		"quantity":     2,
		"dueDate":      dueDate(),
		"borrowerName": "Paul",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	// Only 1 copy remains; the same request again must be rejected.
	w = doJSON(t, router, http.MethodPost, "/api/borrows/"+book.ID.String(), map[string]any{
		"quantity":     2,
		"dueDate":      dueDate(),
		"borrowerName": "Leto",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var stored model.Book
	if err := db.First(&stored, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("expected book in db, got error: %v", err)
	}
	if stored.Copies != 1 {
		t.Errorf("expected copies unchanged at 1, got %d", stored.Copies)
	}

	var count int64
	if err := db.Model(&model.Borrow{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count borrows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 borrow record, got %d", count)
	}
}

func TestBorrowBook_MissingBorrowerName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)

	w := doJSON(t, router, http.MethodPost, "/api/borrows/"+book.ID.String(), map[string]any{
		"quantity": 1,
		"dueDate":  dueDate(),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var stored model.Book
	if err := db.First(&stored, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("expected book in db, got error: %v", err)
	}
	if stored.Copies != 3 {
		t.Errorf("expected copies untouched at 3, got %d", stored.Copies)
	}

	var count int64
	if err := db.Model(&model.Borrow{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count borrows: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no borrow records, got %d", count)
	}
}

func TestBorrowBook_InvalidQuantity(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)

	for name, quantity := range map[string]any{
		"zero":     0,
		"negative": -1,
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/borrows/"+book.ID.String(), map[string]any{
				"quantity":     quantity,
				"dueDate":      dueDate(),
				"borrowerName": "Paul",
			})
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestBorrowBook_MissingDueDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)

	w := doJSON(t, router, http.MethodPost, "/api/borrows/"+book.ID.String(), map[string]any{
		"quantity":     1,
		"borrowerName": "Paul",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestBorrowBook_DueAtAlias(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)

	w := doJSON(t, router, http.MethodPost, "/api/borrows/"+book.ID.String(), map[string]any{
		"quantity":     1,
		"dueAt":        dueDate(),
		"borrowerName": "Paul",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestBorrowBook_InvalidBookID(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/api/borrows/not-a-uuid", map[string]any{
		"quantity":     1,
		"dueDate":      dueDate(),
		"borrowerName": "Paul",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestBorrowBook_BookNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/api/borrows/"+uuid.New().String(), map[string]any{
		"quantity":     1,
		"dueDate":      dueDate(),
		"borrowerName": "Paul",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestBorrowSummary(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 10)
	testutil.SeedBorrow(t, db, book.ID, "Paul", 2)
	testutil.SeedBorrow(t, db, book.ID, "Leto", 3)

	w := doJSON(t, router, http.MethodGet, "/api/borrows/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp BorrowSummaryResponse
	decodeJSON(t, w, &resp)

	if !resp.Success {
		t.Errorf("expected success=true")
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 summary row, got %d", len(resp.Data))
	}
	if resp.Data[0].TotalQuantity != 5 {
		t.Errorf("expected totalQuantity 5, got %d", resp.Data[0].TotalQuantity)
	}
	if resp.Data[0].Title != "Dune" {
		t.Errorf("expected title Dune, got %q", resp.Data[0].Title)
	}
}

func TestBorrowSummary_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodGet, "/api/borrows/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp BorrowSummaryResponse
	decodeJSON(t, w, &resp)
	if len(resp.Data) != 0 {
		t.Errorf("expected empty summary, got %d rows", len(resp.Data))
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/booklend/library-api/internal/model"
)

var (
	// ErrBookNotFound is returned when the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrInsufficientCopies is returned when a borrow request asks for more
	// copies than the book currently has.
	ErrInsufficientCopies = errors.New("not enough copies")
)

type BorrowParams struct {
	Quantity     int
	DueDate      time.Time
	BorrowerName string
}

type BorrowSummary struct {
	BookID        uuid.UUID `json:"bookId"`
	Title         string    `json:"title"`
	ISBN          string    `json:"isbn"`
	TotalQuantity int64     `json:"totalQuantity"`
}

type BorrowRepository interface {
	Borrow(ctx context.Context, bookID uuid.UUID, params BorrowParams) (*model.Borrow, error)
	Summary(ctx context.Context) ([]BorrowSummary, error)
}

type GormBorrowRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewGormBorrowRepository(db *gorm.DB, log *zap.Logger) *GormBorrowRepository {
	return &GormBorrowRepository{db: db, log: log}
}

// Borrow atomically moves stock from the book onto a new loan record. The
// book row is locked for the duration of the transaction so two concurrent
// requests cannot both pass the sufficiency check; either both writes commit
// or neither does.
func (r *GormBorrowRepository) Borrow(ctx context.Context, bookID uuid.UUID, params BorrowParams) (*model.Borrow, error) {
	var borrow *model.Borrow

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		// sqlite has a single writer and rejects FOR UPDATE.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var book model.Book
		if err := q.First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		if params.Quantity > book.Copies {
			return ErrInsufficientCopies
		}

		book.Copies -= params.Quantity
		if err := tx.Save(&book).Error; err != nil {
			return err
		}

		b := &model.Borrow{
			BookID:       book.ID,
			BorrowerName: params.BorrowerName,
			Quantity:     params.Quantity,
			BorrowedAt:   time.Now().UTC(),
			DueDate:      params.DueDate,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		borrow = b
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookNotFound) || errors.Is(err, ErrInsufficientCopies) {
			return nil, err
		}
		r.log.Error("borrow transaction failed",
			zap.String("book_id", bookID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return borrow, nil
}

// Summary reports total borrowed quantity per book. Books that were never
// borrowed are omitted; the report covers loans, not the whole catalog.
func (r *GormBorrowRepository) Summary(ctx context.Context) ([]BorrowSummary, error) {
	var summaries []BorrowSummary

	err := r.db.WithContext(ctx).
		Model(&model.Borrow{}).
		Select("borrows.book_id AS book_id, books.title AS title, books.isbn AS isbn, SUM(borrows.quantity) AS total_quantity").
		Joins("INNER JOIN books ON books.id = borrows.book_id").
		Group("borrows.book_id, books.title, books.isbn").
		Order("total_quantity DESC").
		Scan(&summaries).Error
	if err != nil {
		r.log.Error("borrow summary query failed", zap.Error(err))
		return nil, err
	}

	return summaries, nil
}

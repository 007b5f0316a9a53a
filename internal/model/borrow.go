package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Borrow records a loan of one or more copies of a book. Rows are only ever
// created by the borrow transaction; there is no update or return workflow.
type Borrow struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BookID       uuid.UUID  `json:"bookId" gorm:"type:uuid;not null;index"`
	Book         *Book      `json:"book,omitempty" gorm:"foreignKey:BookID"`
	BorrowerName string     `json:"borrowerName" gorm:"not null"`
	Quantity     int        `json:"quantity" gorm:"not null"`
	BorrowedAt   time.Time  `json:"borrowedAt"`
	DueDate      time.Time  `json:"dueDate" gorm:"not null"`
	ReturnedAt   *time.Time `json:"returnedAt,omitempty"`
	Returned     bool       `json:"returned"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (b *Borrow) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.BorrowedAt.IsZero() {
		b.BorrowedAt = time.Now().UTC()
	}
	return
}

func (b *Borrow) BeforeSave(tx *gorm.DB) (err error) {
	if b.ReturnedAt != nil {
		b.Returned = true
	}
	return
}

package handler

import (
	"github.com/booklend/library-api/internal/model"
	"github.com/booklend/library-api/internal/repository"
)

// BorrowBookRequest accepts the due date under either key; older clients
// send dueAt.
type BorrowBookRequest struct {
	Quantity     int         `json:"quantity" binding:"required,gt=0"`
	DueDate      *model.Date `json:"dueDate" swaggertype:"string" example:"2026-01-15"`
	DueAt        *model.Date `json:"dueAt" swaggertype:"string" example:"2026-01-15"`
	BorrowerName string      `json:"borrowerName" binding:"required"`
}

func (r *BorrowBookRequest) Due() *model.Date {
	if r.DueDate != nil && !r.DueDate.IsZero() {
		return r.DueDate
	}
	if r.DueAt != nil && !r.DueAt.IsZero() {
		return r.DueAt
	}
	return nil
}

type BorrowResponse struct {
	Success bool         `json:"success"`
	Data    model.Borrow `json:"data"`
}

type BorrowSummaryResponse struct {
	Success bool                       `json:"success"`
	Data    []repository.BorrowSummary `json:"data"`
}

package handler

import (
	"github.com/booklend/library-api/internal/model"
)

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Genre       string `json:"genre"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	Copies      *int   `json:"copies" binding:"omitempty,gte=0"`
	Image       string `json:"image"`
}

// UpdateBookRequest enumerates the only fields a client may change. Unknown
// fields are rejected at the boundary via strict decoding.
type UpdateBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Author      *string `json:"author" binding:"omitempty,min=1"`
	Genre       *string `json:"genre"`
	ISBN        *string `json:"isbn"`
	Description *string `json:"description"`
	Copies      *int    `json:"copies" binding:"omitempty,gte=0"`
	Image       *string `json:"image"`
}

func (r *UpdateBookRequest) Empty() bool {
	return r.Title == nil && r.Author == nil && r.Genre == nil &&
		r.ISBN == nil && r.Description == nil && r.Copies == nil &&
		r.Image == nil
}

type BookResponse struct {
	Success bool       `json:"success"`
	Data    model.Book `json:"data"`
}

type ListBooksResponse struct {
	Success bool         `json:"success"`
	Total   int64        `json:"total"`
	Count   int          `json:"count"`
	Data    []model.Book `json:"data"`
}

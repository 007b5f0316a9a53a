package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book is a title held by the library. Copies is the remaining lendable
// stock; Available is derived from it on every save.
type Book struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Author      string    `json:"author" gorm:"not null"`
	Genre       string    `json:"genre,omitempty"`
	ISBN        string    `json:"isbn,omitempty" gorm:"index"`
	Description string    `json:"description,omitempty"`
	Copies      int       `json:"copies" gorm:"not null;check:copies >= 0"`
	Available   bool      `json:"available"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// BeforeSave keeps the availability flag in lockstep with the stock count.
func (b *Book) BeforeSave(tx *gorm.DB) (err error) {
	b.Available = b.Copies > 0
	return
}

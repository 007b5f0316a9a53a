package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/booklend/library-api/internal/events"
	"github.com/booklend/library-api/internal/model"
	"github.com/booklend/library-api/internal/repository"
	"github.com/booklend/library-api/internal/validation"
)

type BookHandler struct {
	repo   repository.BookRepository
	events events.Publisher
	log    *zap.Logger
}

func NewBookHandler(repo repository.BookRepository, publisher events.Publisher, log *zap.Logger) *BookHandler {
	return &BookHandler{repo: repo, events: publisher, log: log}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Filtered, searched, sorted and paginated book listing
// @Tags         books
// @Produce      json
// @Param        page     query     int     false  "Page number"         default(1)
// @Param        limit    query     int     false  "Items per page"      default(20) maximum(100)
// @Param        sort     query     string  false  "Comma-separated sort fields, '-' prefix for descending"
// @Param        fields   query     string  false  "Comma-separated fields to return"
// @Param        keyword  query     string  false  "Substring search on title, author and genre"
// @Success      200      {object}  ListBooksResponse
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	query := repository.ParseListQuery(c.Request.URL.Query())

	result, err := h.repo.List(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}

	if result.Books == nil {
		result.Books = []model.Book{}
	}

	c.JSON(http.StatusOK, ListBooksResponse{
		Success: true,
		Total:   result.Total,
		Count:   len(result.Books),
		Data:    result.Books,
	})
}

// CreateBook godoc
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest         true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	copies := 1
	if req.Copies != nil {
		copies = *req.Copies
	}

	book := model.Book{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		ISBN:        req.ISBN,
		Description: req.Description,
		Copies:      copies,
		Image:       req.Image,
	}

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &book); err != nil {
		c.Error(err)
		return
	}

	if err := h.events.PublishBookCreated(ctx, &book); err != nil {
		h.log.Warn("failed to publish book created event",
			zap.String("book_id", book.ID.String()),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusCreated, BookResponse{Success: true, Data: book})
}

// GetBook godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := h.repo.FindByID(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound, "Book not found")
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Success: true, Data: *book})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Updates only the provided fields; unknown fields are rejected
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Book ID (UUID)"
// @Param        payload  body      UpdateBookRequest  true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse
// @Failure      404      {object}  validation.ErrorResponse
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid book ID")
		return
	}

	var req UpdateBookRequest
	if !validation.BindStrictJSON(c, &req) {
		return
	}

	if req.Empty() {
		writeError(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	ctx := c.Request.Context()

	book, err := h.repo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound, "Book not found")
			return
		}
		c.Error(err)
		return
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Genre != nil {
		book.Genre = *req.Genre
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Copies != nil {
		book.Copies = *req.Copies
	}
	if req.Image != nil {
		book.Image = *req.Image
	}

	// Availability is recomputed from copies in the model save hook.
	if err := h.repo.Update(ctx, book); err != nil {
		c.Error(err)
		return
	}

	if err := h.events.PublishBookUpdated(ctx, book); err != nil {
		h.log.Warn("failed to publish book updated event",
			zap.String("book_id", book.ID.String()),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusOK, BookResponse{Success: true, Data: *book})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid book ID")
		return
	}

	ctx := c.Request.Context()

	if err := h.repo.Delete(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound, "Book not found")
			return
		}
		c.Error(err)
		return
	}

	if err := h.events.PublishBookDeleted(ctx, bookID); err != nil {
		h.log.Warn("failed to publish book deleted event",
			zap.String("book_id", bookID.String()),
			zap.Error(err),
		)
	}

	c.Status(http.StatusNoContent)
}

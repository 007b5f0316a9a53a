package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/booklend/library-api/internal/events"
	"github.com/booklend/library-api/internal/metrics"
	"github.com/booklend/library-api/internal/repository"
	"github.com/booklend/library-api/internal/validation"
)

type BorrowHandler struct {
	repo   repository.BorrowRepository
	events events.Publisher
	log    *zap.Logger
}

func NewBorrowHandler(repo repository.BorrowRepository, publisher events.Publisher, log *zap.Logger) *BorrowHandler {
	return &BorrowHandler{repo: repo, events: publisher, log: log}
}

func (h *BorrowHandler) RegisterRoutes(r *gin.RouterGroup) {
	borrows := r.Group("/borrows")
	{
		borrows.GET("/summary", h.Summary)
		borrows.POST("/:bookId", h.BorrowBook)
	}
}

// BorrowBook godoc
// @Summary      Borrow a book
// @Description  Atomically decrements the book's copies and records the loan
// @Tags         borrows
// @Accept       json
// @Produce      json
// @Param        bookId   path      string             true  "Book ID (UUID)"
// @Param        payload  body      BorrowBookRequest  true  "Borrow request"
// @Success      201      {object}  BorrowResponse
// @Failure      400      {object}  validation.ErrorResponse
// @Failure      404      {object}  validation.ErrorResponse
// @Router       /borrows/{bookId} [post]
func (h *BorrowHandler) BorrowBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid book ID")
		return
	}

	var req BorrowBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	due := req.Due()
	if due == nil {
		writeError(c, http.StatusBadRequest, "Due date is required")
		return
	}

	ctx := c.Request.Context()

	borrow, err := h.repo.Borrow(ctx, bookID, repository.BorrowParams{
		Quantity:     req.Quantity,
		DueDate:      due.Time,
		BorrowerName: req.BorrowerName,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookNotFound):
			metrics.BorrowsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		case errors.Is(err, repository.ErrInsufficientCopies):
			metrics.BorrowsTotal.WithLabelValues(metrics.OutcomeInsufficient).Inc()
		default:
			metrics.BorrowsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		}
		c.Error(err)
		return
	}

	metrics.BorrowsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	if err := h.events.PublishBorrowCreated(ctx, borrow); err != nil {
		h.log.Warn("failed to publish borrow created event",
			zap.String("borrow_id", borrow.ID.String()),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusCreated, BorrowResponse{Success: true, Data: *borrow})
}

// Summary godoc
// @Summary      Borrow summary
// @Description  Total borrowed quantity per book
// @Tags         borrows
// @Produce      json
// @Success      200  {object}  BorrowSummaryResponse
// @Router       /borrows/summary [get]
func (h *BorrowHandler) Summary(c *gin.Context) {
	summaries, err := h.repo.Summary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	if summaries == nil {
		summaries = []repository.BorrowSummary{}
	}

	c.JSON(http.StatusOK, BorrowSummaryResponse{Success: true, Data: summaries})
}

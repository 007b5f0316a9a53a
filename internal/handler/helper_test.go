package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/booklend/library-api/internal/events"
	"github.com/booklend/library-api/internal/middleware"
	"github.com/booklend/library-api/internal/repository"
)

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()

	r := gin.New()
	r.Use(middleware.ErrorHandler(log))

	api := r.Group("/api")
	{
		bookHandler := NewBookHandler(repository.NewGormBookRepository(db), events.NopPublisher{}, log)
		bookHandler.RegisterRoutes(api)

		borrowHandler := NewBorrowHandler(repository.NewGormBorrowRepository(db, log), events.NopPublisher{}, log)
		borrowHandler.RegisterRoutes(api)
	}

	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
}

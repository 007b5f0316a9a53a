package repository

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/booklend/library-api/internal/model"
	"github.com/booklend/library-api/internal/testutil"
)

func seedCatalog(t *testing.T, db *gorm.DB) []model.Book {
	t.Helper()

	now := time.Now().UTC()

	books := []model.Book{
		{Title: "Dune", Author: "Herbert", Genre: "Sci-Fi", Copies: 3, CreatedAt: now.Add(-3 * time.Hour)},
		{Title: "Dune Messiah", Author: "Herbert", Genre: "Sci-Fi", Copies: 1, CreatedAt: now.Add(-2 * time.Hour)},
		{Title: "Emma", Author: "Austen", Genre: "Romance", Copies: 0, CreatedAt: now.Add(-1 * time.Hour)},
	}

	for i := range books {
		require.NoError(t, db.Create(&books[i]).Error)
	}

	return books
}

func TestGormBookRepository_CreateDerivesAvailability(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	inStock := &model.Book{Title: "Dune", Author: "Herbert", Copies: 3}
	require.NoError(t, repo.Create(ctx, inStock))
	assert.True(t, inStock.Available)

	outOfStock := &model.Book{Title: "Emma", Author: "Austen", Copies: 0}
	require.NoError(t, repo.Create(ctx, outOfStock))
	assert.False(t, outOfStock.Available)
}

func TestGormBookRepository_FindByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, found.ID)
	assert.Equal(t, "Dune", found.Title)

	// Fetching twice without intervening mutation returns identical data.
	again, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, found, again)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormBookRepository_UpdateRecomputesAvailability(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)
	require.True(t, book.Available)

	book.Copies = 0
	require.NoError(t, repo.Update(ctx, book))
	assert.False(t, book.Available)

	stored, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, stored.Available)
	assert.Equal(t, 0, stored.Copies)
}

func TestGormBookRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	book := testutil.SeedBook(t, db, "Dune", "Herbert", 3)

	require.NoError(t, repo.Delete(ctx, book.ID))
	assert.ErrorIs(t, repo.Delete(ctx, book.ID), gorm.ErrRecordNotFound)
}

func TestGormBookRepository_List_Defaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	seedCatalog(t, db)

	result, err := repo.List(ctx, ParseListQuery(url.Values{}))
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Total)
	require.Len(t, result.Books, 3)

	// Default sort is creation time descending.
	assert.Equal(t, "Emma", result.Books[0].Title)
	assert.Equal(t, "Dune", result.Books[2].Title)
}

func TestGormBookRepository_List_FilterAndComparison(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	seedCatalog(t, db)

	result, err := repo.List(ctx, ParseListQuery(url.Values{
		"genre":       []string{"Sci-Fi"},
		"copies[gte]": []string{"2"},
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Books, 1)
	assert.Equal(t, "Dune", result.Books[0].Title)
}

func TestGormBookRepository_List_UnknownFilterFieldMatchesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	seedCatalog(t, db)

	result, err := repo.List(ctx, ParseListQuery(url.Values{
		"publisher": []string{"Ace"},
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Total)
	assert.Empty(t, result.Books)
}

func TestGormBookRepository_List_KeywordSearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	seedCatalog(t, db)

	result, err := repo.List(ctx, ParseListQuery(url.Values{
		"keyword": []string{"dune"},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)

	// Keyword also matches author and genre.
	result, err = repo.List(ctx, ParseListQuery(url.Values{
		"keyword": []string{"AUSTEN"},
	}))
	require.NoError(t, err)
	require.Len(t, result.Books, 1)
	assert.Equal(t, "Emma", result.Books[0].Title)
}

func TestGormBookRepository_List_SortAndPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	seedCatalog(t, db)

	result, err := repo.List(ctx, ParseListQuery(url.Values{
		"sort":  []string{"title"},
		"page":  []string{"2"},
		"limit": []string{"2"},
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Total)
	require.Len(t, result.Books, 1)
	assert.Equal(t, "Emma", result.Books[0].Title)
}

func TestGormBookRepository_List_FieldSelection(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	seedCatalog(t, db)

	result, err := repo.List(ctx, ParseListQuery(url.Values{
		"fields": []string{"title"},
		"sort":   []string{"title"},
	}))
	require.NoError(t, err)

	require.Len(t, result.Books, 3)
	first := result.Books[0]
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, "Dune", first.Title)
	assert.Empty(t, first.Author)
	assert.Zero(t, first.Copies)
}

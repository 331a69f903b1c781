package book_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyprint-backend/internal/book"
	"storyprint-backend/internal/models"
)

func TestCreateProject_WithoutPhoto(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	draft := models.Draft{
		Recipient:     "Partner/in",
		RecipientName: "Anna",
		SenderName:    "Max",
		Title:         "Unsere Geschichte",
		WritingStyle:  "Modern & direkt",
	}

	b, library := book.CreateProject(draft, nil, now)

	require.Len(t, b.Pages, book.PageCount)
	assert.Empty(t, library)
	assert.Equal(t, "Unsere Geschichte", b.Title)
	assert.Equal(t, models.BookStatusDraft, b.Status)
	assert.Equal(t, models.SizeSquare, b.Size)
	assert.Equal(t, "modern", b.Theme)
	assert.Equal(t, "Modern & direkt", b.WritingStyle)

	for i, page := range b.Pages {
		assert.Empty(t, page.PhotoID, "page %d should have no photo", i)
		assert.Empty(t, page.Caption, "page %d should have no caption", i)
		assert.Equal(t, models.LayoutSingle, page.Layout)
	}
}

func TestCreateProject_WithPortrait(t *testing.T) {
	now := time.Now()
	existing := []models.Photo{{ID: "pht-old", URL: "data:image/jpeg;base64,AAAA", Name: "old.jpg"}}
	draft := models.Draft{
		RecipientName:     "Anna",
		Title:             "Für Anna",
		RecipientPhotoURL: "data:image/jpeg;base64,BBBB",
	}

	b, library := book.CreateProject(draft, existing, now)

	require.Len(t, b.Pages, book.PageCount)
	require.Len(t, library, 2)

	// The portrait is prepended and referenced from page 0.
	portrait := library[0]
	assert.Equal(t, "data:image/jpeg;base64,BBBB", portrait.URL)
	assert.Equal(t, "Portrait Anna", portrait.Name)
	assert.Equal(t, portrait.ID, b.Pages[0].PhotoID)
	assert.Equal(t, "Das ist Anna", b.Pages[0].Caption)

	// No other page is affected.
	for _, page := range b.Pages[1:] {
		assert.Empty(t, page.PhotoID)
		assert.Empty(t, page.Caption)
	}

	// The input library is untouched.
	assert.Len(t, existing, 1)
	assert.Equal(t, "pht-old", existing[0].ID)
	assert.Equal(t, "pht-old", library[1].ID)
}

func TestCreateProject_TitleFallback(t *testing.T) {
	b, _ := book.CreateProject(models.Draft{RecipientName: "Anna"}, nil, time.Now())
	assert.Equal(t, "Mein Herzensbuch", b.Title)
}

func TestCreateProject_BooksAreIndependent(t *testing.T) {
	b1, _ := book.CreateProject(models.Draft{}, nil, time.Now())
	b2, _ := book.CreateProject(models.Draft{}, nil, time.Now())

	assert.NotEqual(t, b1.ID, b2.ID)

	// Mutating one book's pages must not leak into the other.
	b1.Pages[0].Caption = "changed"
	assert.Empty(t, b2.Pages[0].Caption)
}

func TestAddPhotoToLibrary(t *testing.T) {
	existing := []models.Photo{{ID: "pht-a", Name: "a.jpg"}}

	photo, library := book.AddPhotoToLibrary(existing, "data:image/png;base64,CCCC", "b.png")

	require.Len(t, library, 2)
	assert.Equal(t, photo.ID, library[0].ID)
	assert.Equal(t, "b.png", library[0].Name)
	assert.Equal(t, "pht-a", library[1].ID)
	assert.True(t, strings.HasPrefix(photo.ID, "pht-"))

	// Input slice untouched.
	assert.Len(t, existing, 1)
}

func TestPlaceOrder(t *testing.T) {
	now := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
	b, _ := book.CreateProject(models.Draft{Title: "Für Anna"}, nil, now)
	require.Equal(t, models.BookStatusDraft, b.Status)

	order, updated := book.PlaceOrder(b, "Anna Muster\nMusterweg 1\n12345 Berlin", now)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, b.ID, order.BookID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, now, order.CreatedAt)
	assert.Equal(t, "Anna Muster\nMusterweg 1\n12345 Berlin", order.Address)

	assert.Equal(t, models.BookStatusOrdered, updated.Status)
	// The input book is not mutated.
	assert.Equal(t, models.BookStatusDraft, b.Status)
}

func TestPlaceOrder_TwiceProducesDistinctOrders(t *testing.T) {
	b, _ := book.CreateProject(models.Draft{}, nil, time.Now())

	o1, updated := book.PlaceOrder(b, "Adresse 1", time.Now())
	o2, _ := book.PlaceOrder(updated, "Adresse 2", time.Now())

	assert.NotEqual(t, o1.ID, o2.ID)
	assert.Equal(t, o1.BookID, o2.BookID)
}

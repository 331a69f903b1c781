// Package book implements the photo-book domain operations: project creation
// from a wizard draft, page mutation, library updates and order placement.
// All operations are pure over their inputs; callers own synchronization and
// persistence.
package book

import (
	"errors"
	"fmt"
	"time"

	"storyprint-backend/internal/id"
	"storyprint-backend/internal/models"
)

// PageCount is fixed for the lifetime of a book. There is no add- or
// remove-page operation.
const PageCount = 10

const (
	DefaultTitle = "Mein Herzensbuch"
	DefaultTheme = "modern"
)

// ErrPageOutOfRange is returned by UpdatePage for an invalid page index.
// The update is a strict failure, never an implicit page creation.
var ErrPageOutOfRange = errors.New("page index out of range")

// CreateProject materializes a PhotoBook from an accumulated wizard draft.
// The book always gets exactly PageCount empty pages. When the draft carries
// a recipient portrait, a new Photo is prepended to the library, assigned to
// page 0 and captioned with the recipient's name. An empty draft title falls
// back to DefaultTitle. This operation cannot fail; a draft without a photo
// is the "continue without a photo" path.
//
// The returned book and library share no mutable state with the inputs.
func CreateProject(draft models.Draft, library []models.Photo, now time.Time) (models.PhotoBook, []models.Photo) {
	pages := make([]models.BookPage, PageCount)
	for i := range pages {
		pages[i] = models.BookPage{
			ID:      fmt.Sprintf("page-%d", i),
			Caption: "",
			Layout:  models.LayoutSingle,
		}
	}

	newLibrary := make([]models.Photo, len(library))
	copy(newLibrary, library)

	if draft.RecipientPhotoURL != "" {
		portrait := models.Photo{
			ID:   id.MustNew("pht"),
			URL:  draft.RecipientPhotoURL,
			Name: "Portrait " + draft.RecipientName,
		}
		newLibrary = append([]models.Photo{portrait}, newLibrary...)
		pages[0].PhotoID = portrait.ID
		pages[0].Caption = "Das ist " + draft.RecipientName
	}

	title := draft.Title
	if title == "" {
		title = DefaultTitle
	}

	return models.PhotoBook{
		ID:           id.MustNew("book"),
		Title:        title,
		Theme:        DefaultTheme,
		Size:         models.SizeSquare,
		WritingStyle: draft.WritingStyle,
		Pages:        pages,
		Status:       models.BookStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, newLibrary
}

// AddPhotoToLibrary creates a Photo from an ingested image reference and
// prepends it; the library stays newest-first. The input slice is not
// mutated.
func AddPhotoToLibrary(library []models.Photo, url, name string) (models.Photo, []models.Photo) {
	photo := models.Photo{
		ID:   id.MustNew("pht"),
		URL:  url,
		Name: name,
	}
	newLibrary := make([]models.Photo, 0, len(library)+1)
	newLibrary = append(newLibrary, photo)
	newLibrary = append(newLibrary, library...)
	return photo, newLibrary
}

// PlaceOrder snapshots a book into a new pending Order and flips the book to
// ordered. Address validation beyond non-emptiness is the caller's concern.
// Placing twice yields two distinct orders; there is no idempotence guard.
func PlaceOrder(b models.PhotoBook, address string, now time.Time) (models.Order, models.PhotoBook) {
	order := models.Order{
		ID:        id.MustNewOrder(),
		BookID:    b.ID,
		CreatedAt: now,
		Status:    models.OrderStatusPending,
		Address:   address,
	}

	updated := clone(b)
	updated.Status = models.BookStatusOrdered
	updated.UpdatedAt = now
	return order, updated
}

func clone(b models.PhotoBook) models.PhotoBook {
	pages := make([]models.BookPage, len(b.Pages))
	copy(pages, b.Pages)
	b.Pages = pages
	return b
}

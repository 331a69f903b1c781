package book

import (
	"time"

	"storyprint-backend/internal/models"
)

type photoOp int

const (
	photoKeep photoOp = iota
	photoClear
	photoSet
)

// PhotoAssignment is a three-way update for a page's photo reference:
// keep the current one, clear the slot, or assign a specific photo. The
// zero value keeps. Collapsing "not provided" and "explicitly cleared" into
// one optional is exactly the miscoding this type exists to prevent.
type PhotoAssignment struct {
	op      photoOp
	photoID string
}

// KeepPhoto leaves the page's photo reference unchanged.
func KeepPhoto() PhotoAssignment { return PhotoAssignment{op: photoKeep} }

// ClearPhoto removes the photo from the page, leaving an empty slot.
func ClearPhoto() PhotoAssignment { return PhotoAssignment{op: photoClear} }

// SetPhoto assigns the given photo ID to the page. The ID is not checked
// against the library; a dangling reference is tolerated by the data model.
func SetPhoto(photoID string) PhotoAssignment {
	return PhotoAssignment{op: photoSet, photoID: photoID}
}

// PageUpdate is a partial update of a single page. Caption nil means "leave
// unchanged"; a pointer to the empty string is a real update.
type PageUpdate struct {
	Photo   PhotoAssignment
	Caption *string
}

// UpdatePage returns a copy of the book with exactly the page at index
// replaced according to the update. All other pages are carried over
// unchanged and the input book is not mutated. An out-of-range index fails
// with ErrPageOutOfRange; pages are never created implicitly.
func UpdatePage(b models.PhotoBook, index int, update PageUpdate, now time.Time) (models.PhotoBook, error) {
	if index < 0 || index >= len(b.Pages) {
		return models.PhotoBook{}, ErrPageOutOfRange
	}

	updated := clone(b)
	page := &updated.Pages[index]

	switch update.Photo.op {
	case photoKeep:
	case photoClear:
		page.PhotoID = ""
	case photoSet:
		page.PhotoID = update.Photo.photoID
	}

	if update.Caption != nil {
		page.Caption = *update.Caption
	}

	updated.UpdatedAt = now
	return updated, nil
}

// Package state owns the in-memory application state: the project list, the
// photo library and the order list. All mutations go through App and are
// serialized by a single mutex, which preserves the atomic page-replace
// guarantee of the domain operations. Every change is mirrored to the
// persistent store fire-and-forget; a failed save is logged, never surfaced.
package state

import (
	"errors"
	"log"
	"sync"
	"time"

	"storyprint-backend/internal/book"
	"storyprint-backend/internal/models"
	"storyprint-backend/internal/store"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrNoActiveProject = errors.New("no active project")
)

// App holds process-wide state. Lists are newest-first.
type App struct {
	mu sync.Mutex

	store *store.Store

	projects []models.PhotoBook
	photos   []models.Photo
	orders   []models.Order
	activeID string

	now func() time.Time
}

func New(st *store.Store) *App {
	return &App{
		store: st,
		now:   time.Now,
	}
}

// Load restores persisted state. Called once on startup; an empty store
// yields empty lists.
func (a *App) Load() error {
	projects, err := a.store.LoadProjects()
	if err != nil {
		return err
	}
	photos, err := a.store.LoadPhotos()
	if err != nil {
		return err
	}
	orders, err := a.store.LoadOrders()
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.projects = projects
	a.photos = photos
	a.orders = orders
	return nil
}

// CreateProject materializes a book from the draft, prepends it to the
// project list and makes it the active project.
func (a *App) CreateProject(draft models.Draft) models.PhotoBook {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, library := book.CreateProject(draft, a.photos, a.now())
	a.photos = library
	a.projects = append([]models.PhotoBook{b}, a.projects...)
	a.activeID = b.ID

	a.persistProjects()
	a.persistPhotos()
	return b
}

// UpdatePage applies a partial page update to one project. The project list
// entry is atomically replaced with the updated value; on any error the
// state is untouched.
func (a *App) UpdatePage(projectID string, index int, update book.PageUpdate) (models.PhotoBook, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(projectID)
	if i < 0 {
		return models.PhotoBook{}, ErrProjectNotFound
	}

	updated, err := book.UpdatePage(a.projects[i], index, update, a.now())
	if err != nil {
		return models.PhotoBook{}, err
	}

	a.projects[i] = updated
	a.persistProjects()
	return updated, nil
}

// AddPhoto ingests an uploaded image reference into the library.
func (a *App) AddPhoto(url, name string) models.Photo {
	a.mu.Lock()
	defer a.mu.Unlock()

	photo, library := book.AddPhotoToLibrary(a.photos, url, name)
	a.photos = library
	a.persistPhotos()
	return photo
}

// PlaceOrder snapshots the project into a new pending order and flips the
// project to ordered.
func (a *App) PlaceOrder(projectID, address string) (models.Order, models.PhotoBook, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(projectID)
	if i < 0 {
		return models.Order{}, models.PhotoBook{}, ErrProjectNotFound
	}

	order, updated := book.PlaceOrder(a.projects[i], address, a.now())
	a.projects[i] = updated
	a.orders = append([]models.Order{order}, a.orders...)

	a.persistProjects()
	a.persistOrders()
	return order, updated, nil
}

// SetActive marks the book currently open in the editor.
func (a *App) SetActive(projectID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.indexOf(projectID) < 0 {
		return ErrProjectNotFound
	}
	a.activeID = projectID
	return nil
}

// Active returns the book currently open in the editor.
func (a *App) Active() (models.PhotoBook, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(a.activeID)
	if a.activeID == "" || i < 0 {
		return models.PhotoBook{}, ErrNoActiveProject
	}
	return a.projects[i], nil
}

func (a *App) Projects() []models.PhotoBook {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.PhotoBook, len(a.projects))
	copy(out, a.projects)
	return out
}

func (a *App) Project(projectID string) (models.PhotoBook, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(projectID)
	if i < 0 {
		return models.PhotoBook{}, ErrProjectNotFound
	}
	return a.projects[i], nil
}

func (a *App) Photos() []models.Photo {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.Photo, len(a.photos))
	copy(out, a.photos)
	return out
}

func (a *App) Photo(photoID string) (models.Photo, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, p := range a.photos {
		if p.ID == photoID {
			return p, true
		}
	}
	return models.Photo{}, false
}

func (a *App) Orders() []models.Order {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.Order, len(a.orders))
	copy(out, a.orders)
	return out
}

func (a *App) Order(orderID string) (models.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, o := range a.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// indexOf must be called with the mutex held.
func (a *App) indexOf(projectID string) int {
	for i, p := range a.projects {
		if p.ID == projectID {
			return i
		}
	}
	return -1
}

func (a *App) persistProjects() {
	if err := a.store.SaveProjects(a.projects); err != nil {
		log.Printf("Warning: failed to persist projects: %v", err)
	}
}

func (a *App) persistPhotos() {
	if err := a.store.SavePhotos(a.photos); err != nil {
		log.Printf("Warning: failed to persist photos: %v", err)
	}
}

func (a *App) persistOrders() {
	if err := a.store.SaveOrders(a.orders); err != nil {
		log.Printf("Warning: failed to persist orders: %v", err)
	}
}

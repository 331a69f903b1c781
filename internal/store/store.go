// Package store persists the application state in a Badger key-value
// database. Each list lives under one fixed key as a JSON blob; there are no
// transactions across keys and no schema versioning.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/dgraph-io/badger/v4"

	"storyprint-backend/internal/models"
)

const (
	keyProjects = "storyprint_projects"
	keyPhotos   = "storyprint_photos"
	keyOrders   = "storyprint_orders"
)

// Store wraps a Badger database instance.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Survive crashes without losing acknowledged writes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	log.Printf("Store opened at %s", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveProjects overwrites the serialized project list.
func (s *Store) SaveProjects(projects []models.PhotoBook) error {
	return s.setJSON(keyProjects, projects)
}

// LoadProjects returns the stored project list, or an empty list when
// nothing has been saved yet.
func (s *Store) LoadProjects() ([]models.PhotoBook, error) {
	var projects []models.PhotoBook
	if err := s.getJSON(keyProjects, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// SavePhotos overwrites the serialized photo library.
func (s *Store) SavePhotos(photos []models.Photo) error {
	return s.setJSON(keyPhotos, photos)
}

func (s *Store) LoadPhotos() ([]models.Photo, error) {
	var photos []models.Photo
	if err := s.getJSON(keyPhotos, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// SaveOrders overwrites the serialized order list.
func (s *Store) SaveOrders(orders []models.Order) error {
	return s.setJSON(keyOrders, orders)
}

func (s *Store) LoadOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.getJSON(keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON reads a key into v. A missing key leaves v untouched and is not an
// error; first startup has nothing persisted.
func (s *Store) getJSON(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

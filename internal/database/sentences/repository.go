// Package sentences provides database operations for sentences.
//
// This package implements the SentenceStore interface defined in internal/http/sentences.go.
package sentences

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/entities"
)

// Repository handles all sentence database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sentence repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all sentences, most recently updated first.
func (r *Repository) List() ([]entities.Sentence, error) {
	items := []entities.Sentence{}
	err := r.db.Order("updated_at DESC, id DESC").Find(&items).Error
	return items, err
}

func (r *Repository) Create(item *entities.Sentence) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a sentence or returns database.ErrNotFound.
func (r *Repository) GetByID(id uint) (*entities.Sentence, error) {
	var item entities.Sentence
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) Update(item *entities.Sentence) error {
	return r.db.Save(item).Error
}

func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Sentence{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete sentence %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *Repository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entities.Sentence{}).Count(&total).Error
	return total, err
}

// Package dialogues provides database operations for dialogues.
//
// This package implements the DialogueStore interface defined in internal/http/dialogues.go.
package dialogues

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/entities"
)

// Repository handles all dialogue database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new dialogue repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all dialogues, most recently updated first.
func (r *Repository) List() ([]entities.Dialogue, error) {
	items := []entities.Dialogue{}
	err := r.db.Order("updated_at DESC, id DESC").Find(&items).Error
	return items, err
}

func (r *Repository) Create(item *entities.Dialogue) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a dialogue or returns database.ErrNotFound.
func (r *Repository) GetByID(id uint) (*entities.Dialogue, error) {
	var item entities.Dialogue
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) Update(item *entities.Dialogue) error {
	return r.db.Save(item).Error
}

func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Dialogue{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete dialogue %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *Repository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entities.Dialogue{}).Count(&total).Error
	return total, err
}

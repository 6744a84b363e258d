// Package words provides database operations for vocabulary words.
//
// This package implements the WordStore interface defined in internal/http/words.go.
//
// # Usage
//
//	repo := words.NewRepository(db)
//	all, err := repo.List()
package words

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/entities"
)

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new word repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all words, most recently updated first.
func (r *Repository) List() ([]entities.Word, error) {
	words := []entities.Word{}
	err := r.db.Order("updated_at DESC, id DESC").Find(&words).Error
	return words, err
}

// Create inserts a word and fills in its id and timestamps.
// Returns database.ErrConflict when the word text is already stored.
func (r *Repository) Create(word *entities.Word) error {
	return translate(r.db.Create(word).Error)
}

// GetByID retrieves a word or returns database.ErrNotFound.
func (r *Repository) GetByID(id uint) (*entities.Word, error) {
	var word entities.Word
	err := r.db.First(&word, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// FindByWord returns the word with exactly this text or database.ErrNotFound.
func (r *Repository) FindByWord(text string) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Where("word = ?", text).First(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// Update writes every column of the word, including cleared optional fields.
func (r *Repository) Update(word *entities.Word) error {
	return translate(r.db.Save(word).Error)
}

// Delete removes a word by id.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Word{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete word %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Count returns the number of stored words.
func (r *Repository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entities.Word{}).Count(&total).Error
	return total, err
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return database.ErrConflict
	}
	return err
}

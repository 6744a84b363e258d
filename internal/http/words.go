package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/entities"
	"github.com/mrlokans/english-hub/internal/metrics"
)

// WordStore defines database operations for vocabulary words.
type WordStore interface {
	List() ([]entities.Word, error)
	Create(word *entities.Word) error
	GetByID(id uint) (*entities.Word, error)
	FindByWord(text string) (*entities.Word, error)
	Update(word *entities.Word) error
	Delete(id uint) error
}

type WordsController struct {
	store   WordStore
	metrics *metrics.Collectors
}

func NewWordsController(store WordStore, m *metrics.Collectors) *WordsController {
	return &WordsController{store: store, metrics: m}
}

// WordRequest is the request body for creating and updating a word.
// Updates replace every field: an omitted optional field is cleared.
// Required fields must be present but may be empty.
type WordRequest struct {
	Word      *string `json:"word" binding:"required"`
	MeaningCN *string `json:"meaning_cn" binding:"required"`
	ExampleEN *string `json:"example_en"`
	Notes     *string `json:"notes"`
}

func (r WordRequest) applyTo(w *entities.Word) {
	w.Word = *r.Word
	w.MeaningCN = *r.MeaningCN
	w.ExampleEN = entities.OptionalText(r.ExampleEN)
	w.Notes = entities.OptionalText(r.Notes)
}

// ListWords returns all words, most recently updated first.
// GET /api/words
func (wc *WordsController) ListWords(c *gin.Context) {
	words, err := wc.store.List()
	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}
	c.JSON(http.StatusOK, words)
}

// CreateWord adds a word unless one with the same text exists.
// POST /api/words
func (wc *WordsController) CreateWord(c *gin.Context) {
	var req WordRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := wc.store.FindByWord(*req.Word)
	if err == nil {
		respondConflict(c, "Word already exists")
		return
	}
	if !errors.Is(err, database.ErrNotFound) {
		respondInternalError(c, err, "find word")
		return
	}

	var word entities.Word
	req.applyTo(&word)
	if err := wc.store.Create(&word); err != nil {
		// Lost a race against a concurrent insert of the same word.
		if errors.Is(err, database.ErrConflict) {
			respondConflict(c, "Word already exists")
			return
		}
		respondInternalError(c, err, "create word")
		return
	}

	wc.metrics.RecordMutation("word", "create")
	c.JSON(http.StatusOK, word)
}

// UpdateWord replaces all fields of an existing word.
// PUT /api/words/:id
func (wc *WordsController) UpdateWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "word")
	if !ok {
		return
	}

	var req WordRequest
	if !bindJSON(c, &req) {
		return
	}

	word, err := wc.store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "word")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get word")
		return
	}

	req.applyTo(word)
	if err := wc.store.Update(word); err != nil {
		if errors.Is(err, database.ErrConflict) {
			respondConflict(c, "Word already exists")
			return
		}
		respondInternalError(c, err, "update word")
		return
	}

	wc.metrics.RecordMutation("word", "update")
	c.JSON(http.StatusOK, word)
}

// DeleteWord removes a word.
// DELETE /api/words/:id
func (wc *WordsController) DeleteWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "word")
	if !ok {
		return
	}

	if err := wc.store.Delete(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "word")
			return
		}
		respondInternalError(c, err, "delete word")
		return
	}

	wc.metrics.RecordMutation("word", "delete")
	respondDeleted(c)
}

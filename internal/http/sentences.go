package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/entities"
	"github.com/mrlokans/english-hub/internal/metrics"
)

// SentenceStore defines database operations for example sentences.
type SentenceStore interface {
	List() ([]entities.Sentence, error)
	Create(sentence *entities.Sentence) error
	GetByID(id uint) (*entities.Sentence, error)
	Update(sentence *entities.Sentence) error
	Delete(id uint) error
}

type SentencesController struct {
	store   SentenceStore
	metrics *metrics.Collectors
}

func NewSentencesController(store SentenceStore, m *metrics.Collectors) *SentencesController {
	return &SentencesController{store: store, metrics: m}
}

// SentenceRequest is the request body for creating and updating a sentence.
// Both texts must be present but may be empty.
type SentenceRequest struct {
	SentenceEN    *string `json:"sentence_en" binding:"required"`
	TranslationCN *string `json:"translation_cn" binding:"required"`
	Scene         *string `json:"scene"`
	Notes         *string `json:"notes"`
}

func (r SentenceRequest) applyTo(s *entities.Sentence) {
	s.SentenceEN = *r.SentenceEN
	s.TranslationCN = *r.TranslationCN
	s.Scene = entities.OptionalText(r.Scene)
	s.Notes = entities.OptionalText(r.Notes)
}

// GET /api/sentences
func (sc *SentencesController) ListSentences(c *gin.Context) {
	sentences, err := sc.store.List()
	if err != nil {
		respondInternalError(c, err, "list sentences")
		return
	}
	c.JSON(http.StatusOK, sentences)
}

// POST /api/sentences
func (sc *SentencesController) CreateSentence(c *gin.Context) {
	var req SentenceRequest
	if !bindJSON(c, &req) {
		return
	}

	var sentence entities.Sentence
	req.applyTo(&sentence)
	if err := sc.store.Create(&sentence); err != nil {
		respondInternalError(c, err, "create sentence")
		return
	}

	sc.metrics.RecordMutation("sentence", "create")
	c.JSON(http.StatusOK, sentence)
}

// PUT /api/sentences/:id
func (sc *SentencesController) UpdateSentence(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "sentence")
	if !ok {
		return
	}

	var req SentenceRequest
	if !bindJSON(c, &req) {
		return
	}

	sentence, err := sc.store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "sentence")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get sentence")
		return
	}

	req.applyTo(sentence)
	if err := sc.store.Update(sentence); err != nil {
		respondInternalError(c, err, "update sentence")
		return
	}

	sc.metrics.RecordMutation("sentence", "update")
	c.JSON(http.StatusOK, sentence)
}

// DELETE /api/sentences/:id
func (sc *SentencesController) DeleteSentence(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "sentence")
	if !ok {
		return
	}

	if err := sc.store.Delete(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "sentence")
			return
		}
		respondInternalError(c, err, "delete sentence")
		return
	}

	sc.metrics.RecordMutation("sentence", "delete")
	respondDeleted(c)
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/entities"
	"github.com/mrlokans/english-hub/internal/metrics"
)

// DialogueStore defines database operations for dialogues.
type DialogueStore interface {
	List() ([]entities.Dialogue, error)
	Create(dialogue *entities.Dialogue) error
	GetByID(id uint) (*entities.Dialogue, error)
	Update(dialogue *entities.Dialogue) error
	Delete(id uint) error
}

type DialoguesController struct {
	store   DialogueStore
	metrics *metrics.Collectors
}

func NewDialoguesController(store DialogueStore, m *metrics.Collectors) *DialoguesController {
	return &DialoguesController{store: store, metrics: m}
}

// DialogueRequest is the request body for creating and updating a dialogue.
// Title and English text must be non-empty.
type DialogueRequest struct {
	Title      string  `json:"title" binding:"required"`
	Scene      *string `json:"scene"`
	DialogueEN string  `json:"dialogue_en" binding:"required"`
	DialogueCN *string `json:"dialogue_cn"`
}

func (r DialogueRequest) applyTo(d *entities.Dialogue) {
	d.Title = r.Title
	d.Scene = entities.OptionalText(r.Scene)
	d.DialogueEN = r.DialogueEN
	d.DialogueCN = entities.OptionalText(r.DialogueCN)
}

// GET /api/dialogues
func (dc *DialoguesController) ListDialogues(c *gin.Context) {
	dialogues, err := dc.store.List()
	if err != nil {
		respondInternalError(c, err, "list dialogues")
		return
	}
	c.JSON(http.StatusOK, dialogues)
}

// POST /api/dialogues
func (dc *DialoguesController) CreateDialogue(c *gin.Context) {
	var req DialogueRequest
	if !bindJSON(c, &req) {
		return
	}

	var dialogue entities.Dialogue
	req.applyTo(&dialogue)
	if err := dc.store.Create(&dialogue); err != nil {
		respondInternalError(c, err, "create dialogue")
		return
	}

	dc.metrics.RecordMutation("dialogue", "create")
	c.JSON(http.StatusOK, dialogue)
}

// PUT /api/dialogues/:id
func (dc *DialoguesController) UpdateDialogue(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "dialogue")
	if !ok {
		return
	}

	var req DialogueRequest
	if !bindJSON(c, &req) {
		return
	}

	dialogue, err := dc.store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "dialogue")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get dialogue")
		return
	}

	req.applyTo(dialogue)
	if err := dc.store.Update(dialogue); err != nil {
		respondInternalError(c, err, "update dialogue")
		return
	}

	dc.metrics.RecordMutation("dialogue", "update")
	c.JSON(http.StatusOK, dialogue)
}

// DELETE /api/dialogues/:id
func (dc *DialoguesController) DeleteDialogue(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "dialogue")
	if !ok {
		return
	}

	if err := dc.store.Delete(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "dialogue")
			return
		}
		respondInternalError(c, err, "delete dialogue")
		return
	}

	dc.metrics.RecordMutation("dialogue", "delete")
	respondDeleted(c)
}

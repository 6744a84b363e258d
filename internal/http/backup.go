package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// BackupQueue schedules asynchronous snapshot backups and reports their state.
type BackupQueue interface {
	EnqueueBackup(reason string) (string, error)
	BackupStatus(ctx context.Context, taskID string) (string, error)
}

// BackupStatusResponse describes one backup task.
type BackupStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type BackupController struct {
	queue BackupQueue
}

func NewBackupController(queue BackupQueue) *BackupController {
	return &BackupController{queue: queue}
}

// TriggerBackup enqueues a snapshot of all records.
// POST /api/admin/backup
func (bc *BackupController) TriggerBackup(c *gin.Context) {
	if bc.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is not enabled")
		return
	}

	taskID, err := bc.queue.EnqueueBackup("manual")
	if err != nil {
		respondInternalError(c, err, "enqueue backup task")
		return
	}

	respondAccepted(c, "backup task started", gin.H{"task_id": taskID})
}

// GetBackupStatus returns the state of a backup task.
// GET /api/admin/backup/:id
func (bc *BackupController) GetBackupStatus(c *gin.Context) {
	if bc.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is not enabled")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	taskID := c.Param("id")
	status, err := bc.queue.BackupStatus(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "backup task status")
		return
	}
	if status == "not_found" {
		respondNotFound(c, "backup task")
		return
	}

	c.JSON(http.StatusOK, BackupStatusResponse{ID: taskID, Status: status})
}

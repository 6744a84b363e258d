package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// SnapshotWriter writes a full backup and returns its file name.
type SnapshotWriter interface {
	Write() (string, error)
}

// BackupRecorder is notified about every finished backup.
type BackupRecorder interface {
	RecordBackup(err error)
}

// BackupTask writes a JSON snapshot of all words, sentences and dialogues.
type BackupTask struct {
	Reason string `json:"reason"` // "manual" or "scheduled"
}

func (t BackupTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "backup_snapshot",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// BackupProcessor creates a processor for snapshot backups. recorder may be nil.
func BackupProcessor(writer SnapshotWriter, recorder BackupRecorder) backlite.QueueProcessor[BackupTask] {
	return func(ctx context.Context, task BackupTask) error {
		if writer == nil {
			return fmt.Errorf("snapshot writer not configured")
		}

		name, err := writer.Write()
		if recorder != nil {
			recorder.RecordBackup(err)
		}
		if err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}

		log.Printf("[TASK] Backup (%s) written to %s", task.Reason, name)
		return nil
	}
}

func NewBackupQueue(writer SnapshotWriter, recorder BackupRecorder) backlite.Queue {
	return backlite.NewQueue(BackupProcessor(writer, recorder))
}

// EnqueueBackup adds a BackupTask and returns its task id.
func (c *Client) EnqueueBackup(reason string) (string, error) {
	ids, err := c.Add(BackupTask{Reason: reason}).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue backup: %w", err)
	}
	log.Printf("Enqueued BackupTask (%s) with ID: %s", reason, ids[0])
	return ids[0], nil
}

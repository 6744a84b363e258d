package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/english-hub/internal/backup"
	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/database/dialogues"
	"github.com/mrlokans/english-hub/internal/database/sentences"
	"github.com/mrlokans/english-hub/internal/database/words"
	"github.com/mrlokans/english-hub/internal/http"
	"github.com/mrlokans/english-hub/internal/metrics"
	"github.com/mrlokans/english-hub/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.WordStore = (*words.Repository)(nil)
var _ http.SentenceStore = (*sentences.Repository)(nil)
var _ http.DialogueStore = (*dialogues.Repository)(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Backups
// =============================================================================

var _ backup.WordLister = (*words.Repository)(nil)
var _ backup.SentenceLister = (*sentences.Repository)(nil)
var _ backup.DialogueLister = (*dialogues.Repository)(nil)
var _ tasks.SnapshotWriter = (*backup.Writer)(nil)
var _ tasks.BackupRecorder = (*metrics.Collectors)(nil)
var _ http.BackupQueue = (*tasks.Client)(nil)

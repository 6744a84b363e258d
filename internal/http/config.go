package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mrlokans/english-hub/internal/metrics"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database  Pinger
	Words     WordStore
	Sentences SentenceStore
	Dialogues DialogueStore

	// Optional: nil disables POST /api/admin/backup
	Backups BackupQueue

	// Optional: nil disables request metrics and GET /metrics
	Metrics  *metrics.Collectors
	Gatherer prometheus.Gatherer

	// Origin of the web client allowed to make cross-origin requests
	AllowedOrigin string

	// Application info
	Version string
}

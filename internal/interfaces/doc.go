// Package interfaces documents the core abstractions used throughout the application.
//
// # Data Access Interfaces
//
//   - WordStore: Word management (internal/http/words.go)
//   - SentenceStore: Sentence management (internal/http/sentences.go)
//   - DialogueStore: Dialogue management (internal/http/dialogues.go)
//   - Pinger: Store connectivity for readiness checks (internal/http/health.go)
//
// # Background Work Interfaces
//
//   - BackupQueue: Asynchronous snapshot backups (internal/http/backup.go)
//   - SnapshotWriter / BackupRecorder: Backup task dependencies (internal/tasks/backup.go)
//   - WordLister / SentenceLister / DialogueLister: Snapshot sources (internal/backup/backup.go)
//
// # Adding a New Record Kind
//
//  1. Add the GORM model to internal/entities and to database.Migrate
//  2. Create internal/database/<kind>/ with a Repository
//  3. Define a <Kind>Store interface and controller in internal/http
//  4. Register routes in NewRouter
//  5. Add a compile-time check to checks.go
package interfaces

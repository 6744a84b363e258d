// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into one sub-package per record kind:
//
//	database/
//	├── database.go      # Connection setup and table creation
//	├── errors.go        # ErrNotFound / ErrConflict sentinels
//	├── words/           # Vocabulary words
//	├── sentences/       # Example sentences
//	└── dialogues/       # Dialogues
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type built on an injected *gorm.DB:
//
//	db, err := database.NewDatabase(database.Options{Path: "./app.db"})
//
//	wordsRepo := words.NewRepository(db.DB)
//	word, err := wordsRepo.GetByID(42)
//	if errors.Is(err, database.ErrNotFound) { ... }
//
// Repositories never share state beyond the *gorm.DB handle, so tests can
// build an isolated store per test with database.MemoryPath.
//
// # Interface Implementations
//
//   - words.Repository: implements http.WordStore
//   - sentences.Repository: implements http.SentenceStore
//   - dialogues.Repository: implements http.DialogueStore
//
// Compile-time checks live in internal/interfaces.
package database

// Package backup writes JSON snapshots of every stored record.
package backup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/english-hub/internal/entities"
)

type WordLister interface {
	List() ([]entities.Word, error)
	Count() (int64, error)
}

type SentenceLister interface {
	List() ([]entities.Sentence, error)
	Count() (int64, error)
}

type DialogueLister interface {
	List() ([]entities.Dialogue, error)
	Count() (int64, error)
}

// RecordCounts holds the table totals reported by the store when the
// snapshot was taken.
type RecordCounts struct {
	Words     int64 `json:"words"`
	Sentences int64 `json:"sentences"`
	Dialogues int64 `json:"dialogues"`
}

// Snapshot is the on-disk backup format.
type Snapshot struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Counts    RecordCounts        `json:"counts"`
	Words     []entities.Word     `json:"words"`
	Sentences []entities.Sentence `json:"sentences"`
	Dialogues []entities.Dialogue `json:"dialogues"`
}

type Writer struct {
	Dir string

	words     WordLister
	sentences SentenceLister
	dialogues DialogueLister
	now       func() time.Time
}

func NewWriter(dir string, words WordLister, sentences SentenceLister, dialogues DialogueLister) *Writer {
	return &Writer{
		Dir:       dir,
		words:     words,
		sentences: sentences,
		dialogues: dialogues,
		now:       time.Now,
	}
}

// Write collects all records and stores them as <timestamp>-<uuid>.json.
// It returns the file name relative to Dir.
func (w *Writer) Write() (string, error) {
	snapshot, err := w.collect()
	if err != nil {
		return "", err
	}

	if err := w.ensureDir(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s-%s.json", snapshot.CreatedAt.UTC().Format("20060102T150405Z"), snapshot.ID)
	path := filepath.Join(w.Dir, filename)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Dir only ever holds complete snapshots.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	log.Printf("[BACKUP] Wrote %s (%d words, %d sentences, %d dialogues)",
		path, snapshot.Counts.Words, snapshot.Counts.Sentences, snapshot.Counts.Dialogues)
	return filename, nil
}

// Read loads a snapshot previously produced by Write.
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}

func (w *Writer) collect() (*Snapshot, error) {
	var counts RecordCounts
	var err error
	if counts.Words, err = w.words.Count(); err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	if counts.Sentences, err = w.sentences.Count(); err != nil {
		return nil, fmt.Errorf("count sentences: %w", err)
	}
	if counts.Dialogues, err = w.dialogues.Count(); err != nil {
		return nil, fmt.Errorf("count dialogues: %w", err)
	}

	words, err := w.words.List()
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	sentences, err := w.sentences.List()
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}
	dialogues, err := w.dialogues.List()
	if err != nil {
		return nil, fmt.Errorf("list dialogues: %w", err)
	}

	return &Snapshot{
		ID:        uuid.New().String(),
		CreatedAt: w.now(),
		Counts:    counts,
		Words:     words,
		Sentences: sentences,
		Dialogues: dialogues,
	}, nil
}

func (w *Writer) ensureDir() error {
	if _, err := os.Stat(w.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(w.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
	}
	return nil
}

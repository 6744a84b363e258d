package entities

import "time"

// Word is a vocabulary entry. The word text is unique across all entries.
type Word struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Word      string    `gorm:"uniqueIndex;size:128;not null" json:"word"`
	MeaningCN string    `gorm:"column:meaning_cn;size:512;not null" json:"meaning_cn"`
	ExampleEN *string   `gorm:"column:example_en;type:text" json:"example_en"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index" json:"updated_at"`
}

// Sentence is an example sentence with its translation.
type Sentence struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SentenceEN    string    `gorm:"column:sentence_en;type:text;not null" json:"sentence_en"`
	TranslationCN string    `gorm:"column:translation_cn;type:text;not null" json:"translation_cn"`
	Scene         *string   `gorm:"size:256" json:"scene"`
	Notes         *string   `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;index" json:"updated_at"`
}

// Dialogue is a titled multi-line conversation with an optional translation.
type Dialogue struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"index;size:256;not null" json:"title"`
	Scene      *string   `gorm:"size:256" json:"scene"`
	DialogueEN string    `gorm:"column:dialogue_en;type:text;not null" json:"dialogue_en"`
	DialogueCN *string   `gorm:"column:dialogue_cn;type:text" json:"dialogue_cn"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index" json:"updated_at"`
}

// Table names.
func (Word) TableName() string     { return "words" }
func (Sentence) TableName() string { return "sentences" }
func (Dialogue) TableName() string { return "dialogues" }

// OptionalText normalizes an optional text field: nil and empty strings both mean absent.
func OptionalText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

package models

import (
	"database/sql"
	"time"
)

// Material is a row of the materials table.
type Material struct {
	ID           string         `db:"ID"`            // ULID
	UserID       sql.NullString `db:"USER_ID"`       // Uploader, empty for anonymous uploads
	Filename     string         `db:"FILENAME"`      // Original filename
	FileType     string         `db:"FILE_TYPE"`     // Lowercased extension without the dot
	Content      string         `db:"CONTENT"`       // Extracted (and truncated) text, CLOB
	AnalysisJSON string         `db:"ANALYSIS_JSON"` // ContentAnalysis as JSON, CLOB
	GeneratedBy  string         `db:"GENERATED_BY"`  // "ai" or "fallback-analysis"
	WordCount    int            `db:"WORD_COUNT"`
	CharCount    int            `db:"CHAR_COUNT"`
	CreatedAt    time.Time      `db:"CREATED_AT"`
}

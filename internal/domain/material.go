package domain

import (
	"context"
	"time"
)

// Material is an uploaded document together with its extracted text and analysis
type Material struct {
	ID          string
	UserID      string
	Filename    string
	FileType    string
	Content     string
	Analysis    ContentAnalysis
	GeneratedBy string
	WordCount   int
	CharCount   int
	CreatedAt   time.Time
}

// MaterialFilter narrows a material listing. Empty fields match everything;
// text comparisons ignore case.
type MaterialFilter struct {
	UserID     string
	Search     string // substring of the filename or the extracted content
	Subject    string // analysis subject_category
	Difficulty string // analysis difficulty_level
	Limit      int
	Offset     int
}

// MaterialRepository persists uploaded materials
type MaterialRepository interface {
	SaveMaterial(ctx context.Context, material *Material) error
	// GetMaterialByID returns nil, nil when no row matches
	GetMaterialByID(ctx context.Context, id string) (*Material, error)
	// ListMaterials returns one page of matches, newest first, and the total match count
	ListMaterials(ctx context.Context, filter MaterialFilter) ([]*Material, int, error)
	Ping(ctx context.Context) error
}

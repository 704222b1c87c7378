package dto

import (
	"time"

	"studybyte/internal/domain"
)

// UploadMaterialRequest is the JSON body of POST /api/materials
// @Description Material upload with inline content
type UploadMaterialRequest struct {
	Filename string `json:"filename" example:"Smart City Design.pdf"`
	Content  string `json:"content"`
	Type     string `json:"type,omitempty" example:"application/pdf"`
	UserID   string `json:"user_id,omitempty"`
}

// UploadMaterialResponse describes the stored material
// @Description Result of a material upload
type UploadMaterialResponse struct {
	Success        bool                   `json:"success"`
	MaterialID     string                 `json:"material_id"`
	Filename       string                 `json:"filename"`
	ContentPreview string                 `json:"content_preview"`
	AIAnalysis     domain.ContentAnalysis `json:"ai_analysis"`
	GeneratedBy    string                 `json:"generated_by"`
	WordCount      int                    `json:"word_count"`
	CharCount      int                    `json:"char_count"`
}

// MaterialResponse is a stored material
// @Description Stored material
type MaterialResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id,omitempty"`
	Filename    string                 `json:"filename"`
	FileType    string                 `json:"file_type"`
	Content     string                 `json:"content"`
	Analysis    domain.ContentAnalysis `json:"analysis"`
	GeneratedBy string                 `json:"generated_by"`
	WordCount   int                    `json:"word_count"`
	CharCount   int                    `json:"char_count"`
	CreatedAt   time.Time              `json:"created_at"`
}

func ToMaterialResponse(m *domain.Material) *MaterialResponse {
	if m == nil {
		return nil
	}
	return &MaterialResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Filename:    m.Filename,
		FileType:    m.FileType,
		Content:     m.Content,
		Analysis:    m.Analysis,
		GeneratedBy: m.GeneratedBy,
		WordCount:   m.WordCount,
		CharCount:   m.CharCount,
		CreatedAt:   m.CreatedAt,
	}
}

// SearchMaterialsRequest is the query string of GET /api/materials
type SearchMaterialsRequest struct {
	UserID     string `query:"user_id"`
	Search     string `query:"search"`
	Subject    string `query:"subject"`
	Difficulty string `query:"difficulty"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

// MaterialSearchFilters echoes the applied filters
type MaterialSearchFilters struct {
	UserID     string `json:"user_id,omitempty"`
	Search     string `json:"search"`
	Subject    string `json:"subject"`
	Difficulty string `json:"difficulty"`
}

// SearchMaterialsResponse is one page of stored materials
// @Description Material search results
type SearchMaterialsResponse struct {
	Success   bool                  `json:"success"`
	Materials []*MaterialResponse   `json:"materials"`
	Total     int                   `json:"total"`
	Limit     int                   `json:"limit"`
	Offset    int                   `json:"offset"`
	Filters   MaterialSearchFilters `json:"filters"`
}

// StatusResponse reports which collaborators are configured and whether they answer
// @Description Service status
type StatusResponse struct {
	Status          string `json:"status" example:"ok"` // ok or degraded
	AIConfigured    bool   `json:"ai_configured"`
	CacheEnabled    bool   `json:"cache_enabled"`
	DatabaseEnabled bool   `json:"database_enabled"`
	Cache           string `json:"cache" example:"up"`
	Database        string `json:"database" example:"disabled"`
}

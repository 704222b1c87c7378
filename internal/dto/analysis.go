package dto

import "studybyte/internal/domain"

// AnalyzeRequest is the body of the analysis endpoints
// @Description Document to analyze
type AnalyzeRequest struct {
	Filename string `json:"filename" example:"Urban_Development_Trends.pdf"`
	Content  string `json:"content"`
}

// AnalysisResponse wraps a ContentAnalysis
// @Description Structured analysis of a document
type AnalysisResponse struct {
	Success     bool                   `json:"success"`
	Analysis    domain.ContentAnalysis `json:"analysis"`
	GeneratedBy string                 `json:"generated_by" example:"fallback-analysis"`
}

// SectionResponse carries one analysis section
// @Description A single analysis section (topics, concepts, objectives or recommendations)
type SectionResponse struct {
	Success     bool     `json:"success"`
	Section     string   `json:"section" example:"topics"`
	Items       []string `json:"items"`
	GeneratedBy string   `json:"generated_by" example:"fallback-analysis"`
}

package domain

import "context"

// ContentAnalyzer produces a ContentAnalysis from a document using an external model.
// Implementations make a single attempt and return an LLM_SERVICE_ERROR on any failure.
type ContentAnalyzer interface {
	AnalyzeContent(ctx context.Context, content, filename string) (*ContentAnalysis, error)
}

// SectionAnalyzer produces a single analysis list (topics, concepts, ...) for a document.
type SectionAnalyzer interface {
	AnalyzeSection(ctx context.Context, section Section, content, filename string) ([]string, error)
}

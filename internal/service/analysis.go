package service

import (
	"context"
	"errors"

	"studybyte/internal/domain"
	"studybyte/internal/synth"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AnalysisResult is an analysis together with where it came from
type AnalysisResult struct {
	Analysis    domain.ContentAnalysis
	GeneratedBy string
}

// SectionResult is one analysis section together with where it came from
type SectionResult struct {
	Section     domain.Section
	Items       []string
	GeneratedBy string
}

// AnalysisService produces document analyses. It never fails: when the model
// is absent or errors, the template result is returned.
type AnalysisService interface {
	Analyze(ctx context.Context, filename, content string) AnalysisResult
	AnalyzeSection(ctx context.Context, section domain.Section, filename, content string) SectionResult
	AIEnabled() bool
}

type analysisService struct {
	analyzer domain.ContentAnalyzer
	sections domain.SectionAnalyzer
	cache    AnalysisCacheService
	group    singleflight.Group
	logger   *zap.Logger
}

// NewAnalysisService creates the analysis service. analyzer and sections may
// be nil, in which case only the templates are used.
func NewAnalysisService(
	analyzer domain.ContentAnalyzer,
	sections domain.SectionAnalyzer,
	cache AnalysisCacheService,
	logger *zap.Logger,
) AnalysisService {
	if cache == nil {
		cache = &noopAnalysisCacheService{}
	}
	return &analysisService{
		analyzer: analyzer,
		sections: sections,
		cache:    cache,
		logger:   logger,
	}
}

func (s *analysisService) AIEnabled() bool {
	return s.analyzer != nil
}

func (s *analysisService) fallback(filename string) AnalysisResult {
	return AnalysisResult{
		Analysis:    synth.SynthesizeAnalysis(synth.Classify(filename)),
		GeneratedBy: domain.GeneratedByFallback,
	}
}

// Analyze implements AnalysisService
func (s *analysisService) Analyze(ctx context.Context, filename, content string) AnalysisResult {
	if s.analyzer == nil {
		return s.fallback(filename)
	}

	key := AnalysisCacheKey(filename, content)
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		err = cached.Validate()
	}
	if err == nil {
		s.logger.Debug("Analysis cache hit", zap.String("filename", filename))
		return AnalysisResult{Analysis: *cached, GeneratedBy: domain.GeneratedByAI}
	}
	if !errors.Is(err, ErrAnalysisNotCached) {
		s.logger.Warn("Analysis cache lookup failed, treating as miss", zap.Error(err))
	}

	// The shared call outlives any single caller; the analyzer applies its own timeout.
	callCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		analysis, err := s.analyzer.AnalyzeContent(callCtx, content, filename)
		if err != nil {
			return nil, err
		}
		if err := analysis.Validate(); err != nil {
			return nil, domain.NewLLMServiceError(err)
		}
		if err := s.cache.Put(callCtx, key, analysis); err != nil {
			s.logger.Warn("Failed to cache analysis", zap.Error(err))
		}
		return analysis, nil
	})
	if err != nil {
		s.logger.Warn("AI analysis failed, using template analysis",
			zap.String("filename", filename),
			zap.Error(err))
		return s.fallback(filename)
	}

	analysis := v.(*domain.ContentAnalysis)
	s.logger.Info("AI analysis generated",
		zap.String("filename", filename),
		zap.Bool("shared", shared))
	return AnalysisResult{Analysis: analysis.Clone(), GeneratedBy: domain.GeneratedByAI}
}

// AnalyzeSection implements AnalysisService
func (s *analysisService) AnalyzeSection(ctx context.Context, section domain.Section, filename, content string) SectionResult {
	if s.sections != nil {
		key := AnalysisCacheKey(filename, content) + ":" + string(section)
		callCtx := context.WithoutCancel(ctx)
		v, err, _ := s.group.Do(key, func() (interface{}, error) {
			return s.sections.AnalyzeSection(callCtx, section, content, filename)
		})
		if err == nil {
			items := v.([]string)
			return SectionResult{
				Section:     section,
				Items:       append([]string(nil), items...),
				GeneratedBy: domain.GeneratedByAI,
			}
		}
		s.logger.Warn("AI section analysis failed, using template section",
			zap.String("section", string(section)),
			zap.Error(err))
	}

	return SectionResult{
		Section:     section,
		Items:       synth.SynthesizeSection(section, synth.ClassifyContent(content)),
		GeneratedBy: domain.GeneratedByFallback,
	}
}

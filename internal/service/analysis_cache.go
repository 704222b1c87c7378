package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"studybyte/internal/cache"
	"studybyte/internal/domain"

	"go.uber.org/zap"
)

// ErrAnalysisNotCached is returned when no analysis is cached for a document.
var ErrAnalysisNotCached = errors.New("analysis not found in cache")

// AnalysisCacheService stores model-generated analyses keyed by document.
type AnalysisCacheService interface {
	Put(ctx context.Context, key string, analysis *domain.ContentAnalysis) error
	Get(ctx context.Context, key string) (*domain.ContentAnalysis, error)
}

// AnalysisCacheKey derives the cache key of a document from its filename and body.
func AnalysisCacheKey(filename, content string) string {
	return cache.GenerateCacheKey("analysis", "content", cache.ContentHash(filename, content))
}

type analysisCacheServiceImpl struct {
	cache  domain.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewAnalysisCacheService returns a no-op service when c is nil.
func NewAnalysisCacheService(c domain.Cache, ttl time.Duration, logger *zap.Logger) AnalysisCacheService {
	if c == nil {
		logger.Info("AnalysisCacheService initialized without a cache; AI analyses will not be cached")
		return &noopAnalysisCacheService{}
	}
	return &analysisCacheServiceImpl{
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *analysisCacheServiceImpl) Put(ctx context.Context, key string, analysis *domain.ContentAnalysis) error {
	if analysis == nil {
		return domain.NewInvalidInputError("cannot cache nil analysis")
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		return domain.NewInternalError("failed to marshal analysis for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to set analysis to cache for key %s", key), err)
	}
	s.logger.Debug("Cached analysis", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *analysisCacheServiceImpl) Get(ctx context.Context, key string) (*domain.ContentAnalysis, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrAnalysisNotCached
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get analysis from cache for key %s", key), err)
	}
	if data == "" {
		return nil, ErrAnalysisNotCached
	}

	var analysis domain.ContentAnalysis
	if err := json.Unmarshal([]byte(data), &analysis); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal analysis from cache for key %s", key), err)
	}
	return &analysis, nil
}

type noopAnalysisCacheService struct{}

func (s *noopAnalysisCacheService) Put(ctx context.Context, key string, analysis *domain.ContentAnalysis) error {
	return nil
}

func (s *noopAnalysisCacheService) Get(ctx context.Context, key string) (*domain.ContentAnalysis, error) {
	return nil, ErrAnalysisNotCached
}

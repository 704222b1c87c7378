package service

import (
	"context"
	"errors"
	"time"

	"studybyte/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockContentAnalyzer ---
type MockContentAnalyzer struct {
	mock.Mock
}

func (m *MockContentAnalyzer) AnalyzeContent(ctx context.Context, content, filename string) (*domain.ContentAnalysis, error) {
	args := m.Called(ctx, content, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentAnalysis), args.Error(1)
}

// --- MockSectionAnalyzer ---
type MockSectionAnalyzer struct {
	mock.Mock
}

func (m *MockSectionAnalyzer) AnalyzeSection(ctx context.Context, section domain.Section, content, filename string) ([]string, error) {
	args := m.Called(ctx, section, content, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MockMaterialRepository ---
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) SaveMaterial(ctx context.Context, material *domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) GetMaterialByID(ctx context.Context, id string) (*domain.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) ListMaterials(ctx context.Context, filter domain.MaterialFilter) ([]*domain.Material, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Material), args.Int(1), args.Error(2)
}

func (m *MockMaterialRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- ManualMockCache for domain.Cache ---
type ManualMockCache struct {
	GetFunc  func(ctx context.Context, key string) (string, error)
	SetFunc  func(ctx context.Context, key string, value string, ttl time.Duration) error
	PingFunc func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// memoryCache is a map-backed domain.Cache for round-trip tests
type memoryCache struct {
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error {
	return nil
}

func aiAnalysis() *domain.ContentAnalysis {
	return &domain.ContentAnalysis{
		Summary:                "Model summary",
		KeyTopics:              []string{"Photosynthesis", "Chlorophyll", "Light", "Carbon"},
		KeyConcepts:            []string{"Energy", "Glucose", "ATP"},
		DifficultyLevel:        domain.LevelBeginner,
		SubjectCategory:        "science",
		LearningObjectives:     []string{"Describe photosynthesis"},
		StudyRecommendations:   []string{"Draw the cycle"},
		SuggestedQuizQuestions: []domain.SuggestedQuestion{},
	}
}

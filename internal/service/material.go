package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"studybyte/internal/adapter/extract"
	"studybyte/internal/config"
	"studybyte/internal/domain"
	"studybyte/internal/dto"
	"studybyte/internal/util"

	"go.uber.org/zap"
)

const truncationMarker = "... [Content truncated]"

// UploadInput is a document handed to MaterialService.Upload. Exactly one of
// Content (text delivered inline) or Data (raw file bytes) is used; Data wins.
type UploadInput struct {
	Filename string
	Content  string
	Data     []byte
	UserID   string
}

// MaterialService handles uploaded study materials
type MaterialService interface {
	Upload(ctx context.Context, in UploadInput) (*dto.UploadMaterialResponse, error)
	Get(ctx context.Context, id string) (*domain.Material, error)
	Search(ctx context.Context, filter domain.MaterialFilter) (*dto.SearchMaterialsResponse, error)
	StoreEnabled() bool
	// Ping checks the material store. It returns nil when no store is configured.
	Ping(ctx context.Context) error
}

type materialService struct {
	repo     domain.MaterialRepository
	analysis AnalysisService
	cfg      config.UploadConfig
	logger   *zap.Logger
}

// NewMaterialService creates a material service. repo may be nil, in which
// case uploads are analyzed but not stored.
func NewMaterialService(repo domain.MaterialRepository, analysis AnalysisService, cfg config.UploadConfig, logger *zap.Logger) MaterialService {
	return &materialService{
		repo:     repo,
		analysis: analysis,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *materialService) StoreEnabled() bool {
	return s.repo != nil
}

func (s *materialService) Ping(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Ping(ctx)
}

// Upload implements MaterialService
func (s *materialService) Upload(ctx context.Context, in UploadInput) (*dto.UploadMaterialResponse, error) {
	size := len(in.Content)
	if in.Data != nil {
		size = len(in.Data)
	}
	if size > s.cfg.MaxBytes {
		return nil, domain.NewContentTooLargeError(size, s.cfg.MaxBytes)
	}

	var text string
	if in.Data != nil {
		extracted, err := extract.FromBytes(in.Filename, in.Data)
		if err != nil {
			return nil, err
		}
		text = extracted
	} else {
		text = extract.FromString(in.Filename, in.Content)
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewEmptyContentError()
	}

	text = truncateRunes(text, s.cfg.MaxContentChars, truncationMarker)
	result := s.analysis.Analyze(ctx, in.Filename, text)

	material := &domain.Material{
		ID:          util.NewULID(),
		UserID:      in.UserID,
		Filename:    in.Filename,
		FileType:    fileType(in.Filename),
		Content:     text,
		Analysis:    result.Analysis,
		GeneratedBy: result.GeneratedBy,
		WordCount:   len(strings.Fields(text)),
		CharCount:   utf8.RuneCountInString(text),
		CreatedAt:   time.Now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.SaveMaterial(ctx, material); err != nil {
			s.logger.Error("Failed to store material", zap.String("material_id", material.ID), zap.Error(err))
		}
	}

	s.logger.Info("Material processed",
		zap.String("material_id", material.ID),
		zap.String("filename", material.Filename),
		zap.String("generated_by", material.GeneratedBy),
		zap.Int("word_count", material.WordCount))

	return &dto.UploadMaterialResponse{
		Success:        true,
		MaterialID:     material.ID,
		Filename:       material.Filename,
		ContentPreview: truncateRunes(text, s.cfg.PreviewChars, ""),
		AIAnalysis:     material.Analysis,
		GeneratedBy:    material.GeneratedBy,
		WordCount:      material.WordCount,
		CharCount:      material.CharCount,
	}, nil
}

// Get implements MaterialService
func (s *materialService) Get(ctx context.Context, id string) (*domain.Material, error) {
	if s.repo == nil {
		return nil, domain.NewMaterialNotFoundError(id)
	}
	material, err := s.repo.GetMaterialByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load material", err)
	}
	if material == nil {
		return nil, domain.NewMaterialNotFoundError(id)
	}
	return material, nil
}

// Search implements MaterialService. Without a store nothing is ever found.
func (s *materialService) Search(ctx context.Context, filter domain.MaterialFilter) (*dto.SearchMaterialsResponse, error) {
	resp := &dto.SearchMaterialsResponse{
		Success:   true,
		Materials: []*dto.MaterialResponse{},
		Limit:     filter.Limit,
		Offset:    filter.Offset,
		Filters: dto.MaterialSearchFilters{
			UserID:     filter.UserID,
			Search:     filter.Search,
			Subject:    filter.Subject,
			Difficulty: filter.Difficulty,
		},
	}
	if s.repo == nil {
		return resp, nil
	}

	materials, total, err := s.repo.ListMaterials(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("Failed to search materials", err)
	}
	for _, m := range materials {
		resp.Materials = append(resp.Materials, dto.ToMaterialResponse(m))
	}
	resp.Total = total

	s.logger.Debug("Materials searched",
		zap.String("user_id", filter.UserID),
		zap.String("search", filter.Search),
		zap.Int("total", total))
	return resp, nil
}

// truncateRunes cuts s to at most n runes and appends marker when it cut anything.
func truncateRunes(s string, n int, marker string) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + marker
}

func fileType(filename string) string {
	if ext := strings.TrimPrefix(extract.Extension(filename), "."); ext != "" {
		return ext
	}
	return "txt"
}

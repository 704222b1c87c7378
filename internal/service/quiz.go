package service

import (
	"context"
	"strings"

	"studybyte/internal/config"
	"studybyte/internal/domain"
	"studybyte/internal/dto"
	"studybyte/internal/synth"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

// quizService implements QuizService. Quizzes always come from the templates.
type quizService struct {
	materials domain.MaterialRepository
	cfg       config.QuizConfig
	logger    *zap.Logger
}

// NewQuizService creates a new instance of quizService. materials may be nil.
func NewQuizService(materials domain.MaterialRepository, cfg config.QuizConfig, logger *zap.Logger) QuizService {
	return &quizService{
		materials: materials,
		cfg:       cfg,
		logger:    logger,
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	filename := req.Filename
	topic := req.Topic

	if req.MaterialID != "" && strings.TrimSpace(filename) == "" {
		material, err := s.loadMaterial(ctx, req.MaterialID)
		if err != nil {
			return nil, err
		}
		filename = material.Filename
		if topic == "" && len(material.Analysis.KeyTopics) > 0 {
			topic = material.Analysis.KeyTopics[0]
		}
	}

	n := s.cfg.DefaultQuestions
	if req.NumQuestions != nil {
		n = *req.NumQuestions
	}

	contentDomain := synth.Classify(filename)
	questions := synth.SynthesizeQuiz(contentDomain, n, topic)

	s.logger.Info("Quiz generated",
		zap.String("filename", filename),
		zap.String("domain", contentDomain.String()),
		zap.String("difficulty", req.Difficulty),
		zap.Int("num_questions", len(questions)))

	return &dto.GenerateQuizResponse{
		Success:     true,
		Questions:   dto.ToQuizQuestionResponses(questions),
		GeneratedBy: domain.GeneratedByFallback,
	}, nil
}

func (s *quizService) loadMaterial(ctx context.Context, id string) (*domain.Material, error) {
	if s.materials == nil {
		return nil, domain.NewMaterialNotFoundError(id)
	}
	material, err := s.materials.GetMaterialByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load material", err)
	}
	if material == nil {
		return nil, domain.NewMaterialNotFoundError(id)
	}
	return material, nil
}

// Package llm implements the external AI collaborators on top of langchaingo.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"studybyte/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const defaultTimeout = 20 * time.Second

// ContentAnalyzer asks a language model for a ContentAnalysis or a single
// analysis section. Each call is one attempt bounded by the configured timeout.
type ContentAnalyzer struct {
	model       llms.Model
	timeout     time.Duration
	temperature float64
	logger      *zap.Logger
}

var (
	_ domain.ContentAnalyzer = (*ContentAnalyzer)(nil)
	_ domain.SectionAnalyzer = (*ContentAnalyzer)(nil)
)

func NewContentAnalyzer(model llms.Model, timeout time.Duration, temperature float64, logger *zap.Logger) *ContentAnalyzer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ContentAnalyzer{
		model:       model,
		timeout:     timeout,
		temperature: temperature,
		logger:      logger,
	}
}

// AnalyzeContent implements domain.ContentAnalyzer
func (a *ContentAnalyzer) AnalyzeContent(ctx context.Context, content, filename string) (*domain.ContentAnalysis, error) {
	raw, err := a.call(ctx, buildAnalysisPrompt(content, filename))
	if err != nil {
		return nil, domain.NewLLMServiceError(err)
	}

	jsonStr, err := extractJSONObject(raw)
	if err != nil {
		a.logger.Warn("Model response had no JSON object",
			zap.String("filename", filename),
			zap.String("response_head", head(raw, 200)))
		return nil, domain.NewLLMServiceError(err)
	}

	var analysis domain.ContentAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return nil, domain.NewLLMServiceError(fmt.Errorf("failed to unmarshal analysis JSON: %w", err))
	}
	analysis.DifficultyLevel = domain.DifficultyLevel(strings.ToLower(string(analysis.DifficultyLevel)))
	for i := range analysis.SuggestedQuizQuestions {
		q := &analysis.SuggestedQuizQuestions[i]
		q.Difficulty = domain.QuestionDifficulty(strings.ToLower(string(q.Difficulty)))
	}

	if err := analysis.Validate(); err != nil {
		return nil, domain.NewLLMServiceError(fmt.Errorf("analysis JSON has the wrong shape: %w", err))
	}

	a.logger.Debug("Model analysis parsed",
		zap.String("filename", filename),
		zap.Int("key_topics", len(analysis.KeyTopics)))
	return &analysis, nil
}

// AnalyzeSection implements domain.SectionAnalyzer
func (a *ContentAnalyzer) AnalyzeSection(ctx context.Context, section domain.Section, content, filename string) ([]string, error) {
	prompt, ok := buildSectionPrompt(section, content, filename)
	if !ok {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown analysis section: %s", section))
	}

	raw, err := a.call(ctx, prompt)
	if err != nil {
		return nil, domain.NewLLMServiceError(err)
	}

	jsonStr, err := extractJSONArray(raw)
	if err != nil {
		return nil, domain.NewLLMServiceError(err)
	}

	var items []string
	if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		return nil, domain.NewLLMServiceError(fmt.Errorf("failed to unmarshal %s JSON: %w", section, err))
	}

	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil, domain.NewLLMServiceError(fmt.Errorf("model returned no %s", section))
	}
	return out, nil
}

func (a *ContentAnalyzer) call(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	response, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt, llms.WithTemperature(a.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			a.logger.Warn("LLM request timed out", zap.Duration("timeout", a.timeout))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		a.logger.Warn("LLM call failed", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}

	a.logger.Debug("LLM call finished", zap.Duration("duration", time.Since(start)))
	return response, nil
}

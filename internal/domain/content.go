package domain

import (
	"errors"
	"fmt"
)

// ContentDomain is the filename-derived classification that selects a template set.
type ContentDomain int

const (
	DomainGeneric ContentDomain = iota
	DomainSmartCity
	DomainUrbanDevelopment
)

// ContentDomains lists every declared domain, Generic first.
func ContentDomains() []ContentDomain {
	return []ContentDomain{DomainGeneric, DomainSmartCity, DomainUrbanDevelopment}
}

func (d ContentDomain) String() string {
	switch d {
	case DomainSmartCity:
		return "smart-city"
	case DomainUrbanDevelopment:
		return "urban-development"
	default:
		return "generic"
	}
}

// Source labels reported as generated_by
const (
	GeneratedByFallback = "fallback-analysis"
	GeneratedByAI       = "ai"
)

// DifficultyLevel grades a whole document
type DifficultyLevel string

const (
	LevelBeginner     DifficultyLevel = "beginner"
	LevelIntermediate DifficultyLevel = "intermediate"
	LevelAdvanced     DifficultyLevel = "advanced"
)

func (l DifficultyLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// QuestionDifficulty grades a single suggested question
type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"
)

func (d QuestionDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// List bounds of a well-formed ContentAnalysis
const (
	MinKeyTopics   = 4
	MaxKeyTopics   = 6
	MinKeyConcepts = 3
	MaxKeyConcepts = 5
)

// SuggestedQuestion is a question idea attached to an analysis
type SuggestedQuestion struct {
	Question   string             `json:"question"`
	Topic      string             `json:"topic"`
	Difficulty QuestionDifficulty `json:"difficulty"`
}

// ContentAnalysis is the structured summary record returned for an uploaded document
type ContentAnalysis struct {
	Summary                string              `json:"summary"`
	KeyTopics              []string            `json:"key_topics"`
	KeyConcepts            []string            `json:"key_concepts"`
	DifficultyLevel        DifficultyLevel     `json:"difficulty_level"`
	SubjectCategory        string              `json:"subject_category"`
	LearningObjectives     []string            `json:"learning_objectives"`
	StudyRecommendations   []string            `json:"study_recommendations"`
	SuggestedQuizQuestions []SuggestedQuestion `json:"suggested_quiz_questions"`
}

// Validate checks the record shape. Used on model output before it replaces the fallback.
func (a *ContentAnalysis) Validate() error {
	if a.Summary == "" {
		return NewValidationError("summary is required")
	}
	if n := len(a.KeyTopics); n < MinKeyTopics || n > MaxKeyTopics {
		return NewValidationError(fmt.Sprintf("key_topics must have %d to %d entries, got %d", MinKeyTopics, MaxKeyTopics, n))
	}
	if n := len(a.KeyConcepts); n < MinKeyConcepts || n > MaxKeyConcepts {
		return NewValidationError(fmt.Sprintf("key_concepts must have %d to %d entries, got %d", MinKeyConcepts, MaxKeyConcepts, n))
	}
	if !a.DifficultyLevel.Valid() {
		return NewValidationError("difficulty_level must be beginner, intermediate or advanced")
	}
	if a.SubjectCategory == "" {
		return NewValidationError("subject_category is required")
	}
	if a.LearningObjectives == nil || a.StudyRecommendations == nil || a.SuggestedQuizQuestions == nil {
		return NewValidationError("learning_objectives, study_recommendations and suggested_quiz_questions are required")
	}
	for _, q := range a.SuggestedQuizQuestions {
		if q.Question == "" || !q.Difficulty.Valid() {
			return NewValidationError("suggested_quiz_questions entries need a question and an easy/medium/hard difficulty")
		}
	}
	return nil
}

// Clone returns a deep copy so shared template records are never mutated through a result.
// Empty lists stay empty rather than becoming nil, so they still encode as [].
func (a ContentAnalysis) Clone() ContentAnalysis {
	out := a
	out.KeyTopics = cloneSlice(a.KeyTopics)
	out.KeyConcepts = cloneSlice(a.KeyConcepts)
	out.LearningObjectives = cloneSlice(a.LearningObjectives)
	out.StudyRecommendations = cloneSlice(a.StudyRecommendations)
	out.SuggestedQuizQuestions = cloneSlice(a.SuggestedQuizQuestions)
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// QuizQuestion is one generated multiple-choice question
type QuizQuestion struct {
	Question      string    `json:"question"`
	Options       [4]string `json:"options"`
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
}

// recordValidationError is returned by record Validate methods
type recordValidationError struct {
	message string
}

func (e *recordValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &recordValidationError{message: message}
}

// IsValidationError reports whether err came from a record Validate method
func IsValidationError(err error) bool {
	var target *recordValidationError
	return errors.As(err, &target)
}

package validation

import (
	"math"
	"strings"
	"unicode/utf8"

	"studybyte/internal/domain"
	"studybyte/internal/dto"
	"studybyte/internal/util"
)

const (
	maxFilenameLength = 255
	maxSearchLength   = 255

	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

var difficultyChoices = []string{"easy", "medium", "hard", "beginner", "intermediate", "advanced"}

var levelChoices = []string{"beginner", "intermediate", "advanced"}

// Validator provides request validation functionality
type Validator struct {
	maxQuestions int
}

// NewValidator creates a new validator instance. maxQuestions caps num_questions.
func NewValidator(maxQuestions int) *Validator {
	return &Validator{maxQuestions: maxQuestions}
}

// ValidateGenerateQuizRequest validates and normalizes a quiz request.
// A negative num_questions is treated as zero.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.MaterialID == "" {
		errors = append(errors, v.validateFilename(req.Filename, false)...)
	} else if !util.IsULID(req.MaterialID) {
		errors = append(errors, domain.NewInvalidFormatError("material_id", req.MaterialID))
	}

	if req.NumQuestions != nil {
		if *req.NumQuestions < 0 {
			zero := 0
			req.NumQuestions = &zero
		}
		if *req.NumQuestions > v.maxQuestions {
			errors = append(errors, domain.NewOutOfRangeError("num_questions", *req.NumQuestions, 0, v.maxQuestions))
		}
	}

	req.Difficulty = strings.ToLower(strings.TrimSpace(req.Difficulty))
	if req.Difficulty != "" && !isDifficulty(req.Difficulty) {
		errors = append(errors, domain.NewInvalidChoiceError("difficulty", req.Difficulty, difficultyChoices))
	}

	return errors
}

// ValidateAnalyzeRequest validates the analysis endpoints' body
func (v *Validator) ValidateAnalyzeRequest(req *dto.AnalyzeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateFilename(req.Filename, true)...)
	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	}

	return errors
}

// ValidateUploadRequest validates an inline material upload
func (v *Validator) ValidateUploadRequest(req *dto.UploadMaterialRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateFilename(req.Filename, true)...)
	if req.Content == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	}

	return errors
}

// ValidateSection parses a section path parameter
func (v *Validator) ValidateSection(name string) (domain.Section, domain.ValidationErrors) {
	if strings.TrimSpace(name) == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError("section")}
	}
	section, ok := domain.ParseSection(name)
	if !ok {
		choices := make([]string, 0, len(domain.Sections()))
		for _, s := range domain.Sections() {
			choices = append(choices, string(s))
		}
		return "", domain.ValidationErrors{domain.NewInvalidChoiceError("section", name, choices)}
	}
	return section, nil
}

// ValidateMaterialID validates a material id path parameter
func (v *Validator) ValidateMaterialID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// ValidateSearchRequest normalizes a material search and turns it into a filter.
// A zero limit selects DefaultSearchLimit.
func (v *Validator) ValidateSearchRequest(req *dto.SearchMaterialsRequest) (domain.MaterialFilter, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	req.UserID = strings.TrimSpace(req.UserID)
	req.Search = strings.TrimSpace(req.Search)
	req.Subject = strings.ToLower(strings.TrimSpace(req.Subject))
	req.Difficulty = strings.ToLower(strings.TrimSpace(req.Difficulty))

	if n := utf8.RuneCountInString(req.Search); n > maxSearchLength {
		errors = append(errors, domain.NewOutOfRangeError("search", n, 0, maxSearchLength))
	}
	if req.Difficulty != "" && !domain.DifficultyLevel(req.Difficulty).Valid() {
		errors = append(errors, domain.NewInvalidChoiceError("difficulty", req.Difficulty, levelChoices))
	}
	if req.Limit == 0 {
		req.Limit = DefaultSearchLimit
	}
	if req.Limit < 1 || req.Limit > MaxSearchLimit {
		errors = append(errors, domain.NewOutOfRangeError("limit", req.Limit, 1, MaxSearchLimit))
	}
	if req.Offset < 0 {
		errors = append(errors, domain.NewOutOfRangeError("offset", req.Offset, 0, math.MaxInt32))
	}

	return domain.MaterialFilter{
		UserID:     req.UserID,
		Search:     req.Search,
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}, errors
}

func (v *Validator) validateFilename(filename string, required bool) domain.ValidationErrors {
	if strings.TrimSpace(filename) == "" {
		if required {
			return domain.ValidationErrors{domain.NewMissingFieldError("filename")}
		}
		return nil
	}
	if n := utf8.RuneCountInString(filename); n > maxFilenameLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("filename", n, 1, maxFilenameLength)}
	}
	return nil
}

func isDifficulty(s string) bool {
	for _, c := range difficultyChoices {
		if s == c {
			return true
		}
	}
	return false
}

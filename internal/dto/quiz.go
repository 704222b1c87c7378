package dto

import "studybyte/internal/domain"

// GenerateQuizRequest is the body of POST /api/quiz/generate
// @Description Request body for template-based quiz generation
type GenerateQuizRequest struct {
	Filename     string `json:"filename" example:"Smart City Design.pdf"`
	Content      string `json:"content"`
	NumQuestions *int   `json:"num_questions,omitempty" example:"5"`
	Difficulty   string `json:"difficulty,omitempty" example:"medium"`
	Topic        string `json:"topic,omitempty" example:"Biology"`
	MaterialID   string `json:"material_id,omitempty"`
}

// QuizQuestionResponse is one multiple-choice question
type QuizQuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// GenerateQuizResponse carries the generated questions
// @Description Generated quiz
type GenerateQuizResponse struct {
	Success     bool                   `json:"success"`
	Questions   []QuizQuestionResponse `json:"questions"`
	GeneratedBy string                 `json:"generated_by" example:"fallback-analysis"`
}

// ToQuizQuestionResponses converts domain questions for the API
func ToQuizQuestionResponses(questions []domain.QuizQuestion) []QuizQuestionResponse {
	out := make([]QuizQuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuizQuestionResponse{
			Question:      q.Question,
			Options:       q.Options[:],
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return out
}

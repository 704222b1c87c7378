package synth

import (
	"strconv"
	"strings"

	"studybyte/internal/domain"
)

const defaultTopic = "educational"

// SynthesizeAnalysis returns the domain's analysis record. The document body
// plays no part; only the filename-derived domain does.
func SynthesizeAnalysis(d domain.ContentDomain) domain.ContentAnalysis {
	return Lookup(d).Analysis.Clone()
}

// SynthesizeQuiz builds n questions by cycling through the domain's templates
// in order. An empty topic renders as "educational".
//
// CorrectAnswer is always 0: every template lists the right option first.
func SynthesizeQuiz(d domain.ContentDomain, n int, topic string) []domain.QuizQuestion {
	if n <= 0 {
		return []domain.QuizQuestion{}
	}
	if topic == "" {
		topic = defaultTopic
	}

	templates := Lookup(d).Questions
	questions := make([]domain.QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		tmpl := templates[i%len(templates)]
		r := strings.NewReplacer("{topic}", topic, "{n}", strconv.Itoa(i+1))
		questions = append(questions, domain.QuizQuestion{
			Question:      r.Replace(tmpl.Question),
			Options:       tmpl.Options,
			CorrectAnswer: 0,
			Explanation:   r.Replace(tmpl.Explanation),
		})
	}
	return questions
}

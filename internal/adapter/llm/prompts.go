package llm

import (
	"fmt"

	"studybyte/internal/domain"
)

// Only the head of a document is sent to the model.
const promptContentChars = 2000

const analysisPrompt = `Analyze this educational material: "%s"

Content: %s...

Respond with ONLY a JSON object in the following format:
{
    "summary": "Brief summary of the content",
    "key_topics": ["topic1", "topic2", "topic3", "topic4"],
    "key_concepts": ["concept1", "concept2", "concept3"],
    "difficulty_level": "beginner|intermediate|advanced",
    "subject_category": "mathematics|science|history|engineering|etc",
    "learning_objectives": ["objective1", "objective2"],
    "study_recommendations": ["recommendation1", "recommendation2"],
    "suggested_quiz_questions": [
        {
            "question": "Sample question",
            "topic": "specific topic",
            "difficulty": "easy|medium|hard"
        }
    ]
}

Rules:
1. key_topics must have 4 to 6 entries, key_concepts 3 to 5
2. Only use topics and concepts that actually appear in the content
3. Focus on educational value and learning outcomes`

const sectionPrompt = `Analyze this document and extract the %s:

FILENAME: %s
CONTENT: %s...

Return ONLY a JSON array of %s:

["item 1", "item 2", "item 3", "item 4"]

Requirements:
- Base every entry on what the content actually discusses
- Use specific, meaningful wording
- Return only the JSON array, no additional text`

var sectionAsks = map[domain.Section][2]string{
	domain.SectionTopics:          {"key topics", "4-6 specific topics that are actually discussed in the content"},
	domain.SectionConcepts:        {"key concepts", "4-6 concepts a student must understand"},
	domain.SectionObjectives:      {"learning objectives", "3-5 learning objectives starting with a verb such as Understand, Apply or Analyze"},
	domain.SectionRecommendations: {"study recommendations", "4-6 concrete study recommendations"},
}

func buildAnalysisPrompt(content, filename string) string {
	return fmt.Sprintf(analysisPrompt, filename, head(content, promptContentChars))
}

func buildSectionPrompt(section domain.Section, content, filename string) (string, bool) {
	ask, ok := sectionAsks[section]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(sectionPrompt, ask[0], filename, head(content, promptContentChars), ask[1]), true
}

// head returns at most n runes of s
func head(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

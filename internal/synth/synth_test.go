package synth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studybyte/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     domain.ContentDomain
	}{
		{"smart city title", "Smart City Design.pdf", domain.DomainSmartCity},
		{"smart city joined", "SMARTCITY_notes.txt", domain.DomainSmartCity},
		{"keywords reversed", "city-of-smart-things.md", domain.DomainSmartCity},
		{"urban development", "Urban_Development_Trends.pdf", domain.DomainUrbanDevelopment},
		{"smart city wins over urban development", "smart city urban development.pdf", domain.DomainSmartCity},
		{"only smart", "smart-notes.txt", domain.DomainGeneric},
		{"only urban", "urban.txt", domain.DomainGeneric},
		{"unrelated", "random_notes.txt", domain.DomainGeneric},
		{"empty", "", domain.DomainGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.filename))
		})
	}
}

func TestClassifyContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.ContentTheme
	}{
		{"smart city", "Building a SMART future for every city", domain.ThemeSmartCity},
		{"smart city beats energy", "smart city energy grids", domain.ThemeSmartCity},
		{"energy", "Renewable energy sources", domain.ThemeEnergy},
		{"calculus", "Intro to Calculus", domain.ThemeCalculus},
		{"derivative", "the derivative of x^2", domain.ThemeCalculus},
		{"history", "A short history of Rome", domain.ThemeHistory},
		{"war", "causes of the war", domain.ThemeHistory},
		{"generic", "photosynthesis in plants", domain.ThemeGeneric},
		{"empty", "", domain.ThemeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyContent(tt.content))
		})
	}
}

func TestLookup_EveryDomainHasCompleteTemplates(t *testing.T) {
	for _, d := range domain.ContentDomains() {
		t.Run(d.String(), func(t *testing.T) {
			set := Lookup(d)
			require.NoError(t, set.Analysis.Validate())

			assert.GreaterOrEqual(t, len(set.Analysis.KeyTopics), 4)
			assert.LessOrEqual(t, len(set.Analysis.KeyTopics), 6)
			assert.GreaterOrEqual(t, len(set.Analysis.KeyConcepts), 3)
			assert.LessOrEqual(t, len(set.Analysis.KeyConcepts), 5)

			require.NotEmpty(t, set.Questions)
			if d != domain.DomainGeneric {
				assert.Len(t, set.Questions, 5)
			}
			for i, q := range set.Questions {
				assert.NotEmpty(t, q.Question, "question %d", i)
				assert.NotEmpty(t, q.Explanation, "explanation %d", i)
				for j, opt := range q.Options {
					assert.NotEmpty(t, opt, "question %d option %d", i, j)
				}
			}
		})
	}
}

func TestLookup_UndeclaredDomainPanics(t *testing.T) {
	assert.Panics(t, func() { Lookup(domain.ContentDomain(99)) })
}

func TestSynthesizeAnalysis(t *testing.T) {
	t.Run("generic defaults", func(t *testing.T) {
		a := SynthesizeAnalysis(domain.DomainGeneric)
		assert.Equal(t, domain.LevelBeginner, a.DifficultyLevel)
		assert.Equal(t, "general", a.SubjectCategory)
		assert.Equal(t, []string{"Topic 1", "Topic 2", "Topic 3", "Topic 4"}, a.KeyTopics)
		assert.Equal(t, []string{"Concept 1", "Concept 2", "Concept 3"}, a.KeyConcepts)
	})

	t.Run("named domains are intermediate engineering", func(t *testing.T) {
		for _, d := range []domain.ContentDomain{domain.DomainSmartCity, domain.DomainUrbanDevelopment} {
			a := SynthesizeAnalysis(d)
			assert.Equal(t, domain.LevelIntermediate, a.DifficultyLevel)
			assert.Equal(t, "engineering", a.SubjectCategory)
		}
	})

	t.Run("repeated calls are equal", func(t *testing.T) {
		first := SynthesizeAnalysis(domain.DomainSmartCity)
		second := SynthesizeAnalysis(domain.DomainSmartCity)
		assert.Equal(t, first, second)
	})

	t.Run("mutating a result leaves the bank intact", func(t *testing.T) {
		a := SynthesizeAnalysis(domain.DomainUrbanDevelopment)
		a.KeyTopics[0] = "Mutated"
		a.SuggestedQuizQuestions[0].Question = "Mutated?"

		b := SynthesizeAnalysis(domain.DomainUrbanDevelopment)
		assert.Equal(t, "Urban Planning", b.KeyTopics[0])
		assert.Equal(t, "What is the main focus of modern urban development?", b.SuggestedQuizQuestions[0].Question)
	})
}

func TestSynthesizeQuiz_Length(t *testing.T) {
	for _, d := range domain.ContentDomains() {
		for _, n := range []int{-3, 0, 1, 5, 7, 12} {
			got := SynthesizeQuiz(d, n, "")
			require.NotNil(t, got)
			want := n
			if n < 0 {
				want = 0
			}
			assert.Len(t, got, want, "domain %s n=%d", d, n)
			for _, q := range got {
				assert.Equal(t, 0, q.CorrectAnswer)
				assert.Len(t, q.Options, 4)
			}
		}
	}
}

func TestSynthesizeQuiz_SmartCityMatchesTemplatesInOrder(t *testing.T) {
	questions := SynthesizeQuiz(Classify("Smart City Design.pdf"), 5, "")
	templates := Lookup(domain.DomainSmartCity).Questions

	require.Len(t, questions, 5)
	for i, q := range questions {
		assert.Equal(t, templates[i].Question, q.Question)
		assert.Equal(t, templates[i].Options, q.Options)
		assert.Equal(t, templates[i].Explanation, q.Explanation)
		assert.Equal(t, 0, q.CorrectAnswer)
	}
	assert.Equal(t, "Improve urban living through technology", questions[0].Options[0])
}

func TestSynthesizeQuiz_CyclesTemplates(t *testing.T) {
	questions := SynthesizeQuiz(domain.DomainSmartCity, 12, "")

	require.Len(t, questions, 12)
	assert.Equal(t, questions[2], questions[7])
	assert.Equal(t, questions[0], questions[5])
	assert.Equal(t, questions[1], questions[11])
}

func TestSynthesizeQuiz_GenericInterpolatesTopicAndIndex(t *testing.T) {
	questions := SynthesizeQuiz(Classify("random_notes.txt"), 3, "Biology")

	require.Len(t, questions, 3)
	for i, q := range questions {
		assert.Equal(t, fmt.Sprintf("What is the main focus of this Biology material? (Question %d)", i+1), q.Question)
		assert.Equal(t, fmt.Sprintf("This question tests your understanding of the main topic in question %d", i+1), q.Explanation)
		assert.Equal(t, [4]string{
			"Core concepts and fundamental understanding",
			"Advanced technical details",
			"Historical background",
			"Practical applications",
		}, q.Options)
	}
}

func TestSynthesizeQuiz_GenericDefaultTopic(t *testing.T) {
	questions := SynthesizeQuiz(domain.DomainGeneric, 1, "")
	require.Len(t, questions, 1)
	assert.Equal(t, "What is the main focus of this educational material? (Question 1)", questions[0].Question)
}

func TestSynthesizeQuiz_GenericKeepsWhitespaceTopic(t *testing.T) {
	questions := SynthesizeQuiz(domain.DomainGeneric, 1, "  ")
	require.Len(t, questions, 1)
	assert.Equal(t, "What is the main focus of this    material? (Question 1)", questions[0].Question)
}

func TestSynthesizeQuiz_NamedDomainIgnoresTopic(t *testing.T) {
	withTopic := SynthesizeQuiz(domain.DomainUrbanDevelopment, 5, "Biology")
	without := SynthesizeQuiz(domain.DomainUrbanDevelopment, 5, "")
	assert.Equal(t, without, withTopic)
}

func TestSynthesizeSection(t *testing.T) {
	t.Run("themed lists", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Calculus", "Derivatives", "Integration", "Mathematical Analysis"},
			SynthesizeSection(domain.SectionTopics, domain.ThemeCalculus))
		assert.Equal(t,
			[]string{"Historical Context", "Political Factors", "Social Impact", "Economic Consequences"},
			SynthesizeSection(domain.SectionConcepts, domain.ThemeHistory))
	})

	t.Run("history falls back to generic objectives and recommendations", func(t *testing.T) {
		assert.Equal(t,
			SynthesizeSection(domain.SectionObjectives, domain.ThemeGeneric),
			SynthesizeSection(domain.SectionObjectives, domain.ThemeHistory))
		assert.Equal(t,
			SynthesizeSection(domain.SectionRecommendations, domain.ThemeGeneric),
			SynthesizeSection(domain.SectionRecommendations, domain.ThemeHistory))
	})

	t.Run("every section has a generic list", func(t *testing.T) {
		for _, s := range domain.Sections() {
			assert.NotEmpty(t, SynthesizeSection(s, domain.ThemeGeneric), "section %s", s)
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		assert.Nil(t, SynthesizeSection(domain.Section("summary"), domain.ThemeGeneric))
	})

	t.Run("result is a copy", func(t *testing.T) {
		items := SynthesizeSection(domain.SectionTopics, domain.ThemeEnergy)
		items[0] = "Mutated"
		assert.Equal(t, "Energy Systems", SynthesizeSection(domain.SectionTopics, domain.ThemeEnergy)[0])
	})
}

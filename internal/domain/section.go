package domain

import "strings"

// ContentTheme is the body-derived classification used by the per-section fallbacks.
type ContentTheme int

const (
	ThemeGeneric ContentTheme = iota
	ThemeSmartCity
	ThemeEnergy
	ThemeCalculus
	ThemeHistory
)

func (t ContentTheme) String() string {
	switch t {
	case ThemeSmartCity:
		return "smart-city"
	case ThemeEnergy:
		return "energy"
	case ThemeCalculus:
		return "calculus"
	case ThemeHistory:
		return "history"
	default:
		return "generic"
	}
}

// Section names one list of a ContentAnalysis that can be requested on its own
type Section string

const (
	SectionTopics          Section = "topics"
	SectionConcepts        Section = "concepts"
	SectionObjectives      Section = "objectives"
	SectionRecommendations Section = "recommendations"
)

// Sections returns the section names in display order
func Sections() []Section {
	return []Section{SectionTopics, SectionConcepts, SectionObjectives, SectionRecommendations}
}

// ParseSection maps a case-insensitive name onto a Section
func ParseSection(name string) (Section, bool) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Sections() {
		if s == known {
			return s, true
		}
	}
	return "", false
}

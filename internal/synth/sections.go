package synth

import "studybyte/internal/domain"

type sectionTable map[domain.ContentTheme][]string

var sectionTables = map[domain.Section]sectionTable{
	domain.SectionTopics: {
		domain.ThemeSmartCity: {"Smart Cities", "Urban Development", "Technology Integration", "Sustainable Development"},
		domain.ThemeEnergy:    {"Energy Systems", "Renewable Energy", "Energy Efficiency", "Power Generation"},
		domain.ThemeCalculus:  {"Calculus", "Derivatives", "Integration", "Mathematical Analysis"},
		domain.ThemeHistory:   {"Historical Events", "War Analysis", "Political Context", "Social Impact"},
		domain.ThemeGeneric:   {"Main Concepts", "Key Ideas", "Important Points", "Core Topics"},
	},
	domain.SectionConcepts: {
		domain.ThemeSmartCity: {"Smart City Infrastructure", "IoT Integration", "Data Analytics", "Sustainable Development"},
		domain.ThemeEnergy:    {"Energy Systems", "Renewable Resources", "Energy Efficiency", "Power Distribution"},
		domain.ThemeCalculus:  {"Derivatives", "Integration", "Limits", "Rate of Change"},
		domain.ThemeHistory:   {"Historical Context", "Political Factors", "Social Impact", "Economic Consequences"},
		domain.ThemeGeneric:   {"Core Principles", "Fundamental Concepts", "Key Ideas", "Main Principles"},
	},
	domain.SectionObjectives: {
		domain.ThemeSmartCity: {
			"Understand the key concepts of smart city development",
			"Analyze the role of technology in urban planning",
			"Evaluate the benefits and challenges of smart city implementation",
		},
		domain.ThemeEnergy: {
			"Understand different types of energy systems",
			"Analyze the efficiency of renewable energy sources",
			"Evaluate the environmental impact of energy choices",
		},
		domain.ThemeCalculus: {
			"Understand the fundamental concepts of calculus",
			"Apply derivative rules to solve mathematical problems",
			"Analyze the relationship between derivatives and rates of change",
		},
		domain.ThemeGeneric: {
			"Understand the main concepts presented in the material",
			"Apply the knowledge to practical scenarios",
			"Analyze the relationships between different concepts",
		},
	},
	domain.SectionRecommendations: {
		domain.ThemeSmartCity: {
			"Research real-world smart city implementations and case studies",
			"Create diagrams showing the integration of different smart city technologies",
			"Analyze the benefits and challenges of smart city development",
			"Study the role of data analytics in urban planning",
		},
		domain.ThemeEnergy: {
			"Study different types of renewable energy sources and their efficiency",
			"Analyze energy consumption patterns and optimization strategies",
			"Research the environmental impact of different energy systems",
			"Practice calculating energy efficiency and cost-benefit analysis",
		},
		domain.ThemeCalculus: {
			"Practice derivative rules with various function types",
			"Work through integration problems step by step",
			"Apply calculus concepts to real-world problems",
			"Create visual representations of rates of change",
		},
		domain.ThemeGeneric: {
			"Read through the material systematically and take detailed notes",
			"Create concept maps to visualize relationships between topics",
			"Practice with real-world examples and case studies",
			"Review and test your understanding with practice questions",
		},
	},
}

// SynthesizeSection returns the fallback list for one analysis section.
// A theme without its own entry in that section gets the Generic list.
// An unknown section yields nil.
func SynthesizeSection(section domain.Section, theme domain.ContentTheme) []string {
	table, ok := sectionTables[section]
	if !ok {
		return nil
	}
	items, ok := table[theme]
	if !ok {
		items = table[domain.ThemeGeneric]
	}
	return append([]string(nil), items...)
}

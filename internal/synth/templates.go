package synth

import (
	"fmt"

	"studybyte/internal/domain"
)

// QuestionTemplate bundles a question with its option set and explanation.
// Keeping them in one record keeps the three in step when templates are edited.
// Question and Explanation may contain the {topic} and {n} placeholders.
type QuestionTemplate struct {
	Question    string
	Options     [4]string
	Explanation string
}

// TemplateSet is everything the synthesizers need for one content domain.
type TemplateSet struct {
	Analysis  domain.ContentAnalysis
	Questions []QuestionTemplate
}

// Lookup returns the template set for a domain. It panics on an undeclared
// domain value; every ContentDomain must have a case here.
func Lookup(d domain.ContentDomain) TemplateSet {
	switch d {
	case domain.DomainSmartCity:
		return smartCityTemplates
	case domain.DomainUrbanDevelopment:
		return urbanDevelopmentTemplates
	case domain.DomainGeneric:
		return genericTemplates
	default:
		panic(fmt.Sprintf("synth: no template set for content domain %d", int(d)))
	}
}

var smartCityTemplates = TemplateSet{
	Analysis: domain.ContentAnalysis{
		Summary: "Smart city design and energy management course material. This document covers key concepts in smart city infrastructure, energy efficiency, and urban technology integration.",
		KeyTopics: []string{
			"Smart City Infrastructure",
			"Energy Management",
			"IoT Integration",
			"Urban Planning",
			"Sustainability",
			"Technology Implementation",
		},
		KeyConcepts: []string{
			"Smart Grid Systems",
			"IoT Sensors",
			"Data Analytics",
			"Energy Efficiency",
			"Urban Sustainability",
		},
		DifficultyLevel: domain.LevelIntermediate,
		SubjectCategory: "engineering",
		LearningObjectives: []string{
			"Understand smart city infrastructure components",
			"Analyze energy management strategies in urban environments",
			"Evaluate IoT integration for smart city solutions",
			"Design sustainable urban technology systems",
		},
		StudyRecommendations: []string{
			"Research smart city case studies and implementations",
			"Study IoT and sensor technologies for urban applications",
			"Explore energy efficiency strategies in urban planning",
			"Investigate data analytics for smart city management",
		},
		SuggestedQuizQuestions: []domain.SuggestedQuestion{
			{Question: "What is the primary goal of smart city development?", Topic: "Smart City Infrastructure", Difficulty: domain.DifficultyEasy},
			{Question: "Which technology is most essential for smart city energy management?", Topic: "Energy Management", Difficulty: domain.DifficultyMedium},
		},
	},
	Questions: []QuestionTemplate{
		{
			Question:    "What is the primary goal of smart city development?",
			Options:     [4]string{"Improve urban living through technology", "Increase population density", "Reduce government spending", "Eliminate traditional infrastructure"},
			Explanation: "Smart cities aim to enhance urban living through technological integration",
		},
		{
			Question:    "Which technology is most essential for smart city infrastructure?",
			Options:     [4]string{"Internet of Things (IoT) sensors", "Traditional paper systems", "Manual data collection", "Basic telephone networks"},
			Explanation: "IoT sensors are fundamental for collecting real-time data in smart cities",
		},
		{
			Question:    "What is a key benefit of smart city implementation?",
			Options:     [4]string{"Improved efficiency and sustainability", "Increased manual labor", "Higher energy consumption", "Reduced technology usage"},
			Explanation: "Smart cities provide improved efficiency and environmental sustainability",
		},
		{
			Question:    "Which component is crucial for smart city energy management?",
			Options:     [4]string{"Smart grid systems", "Manual monitoring", "Paper records", "Basic meters"},
			Explanation: "Smart grid systems enable efficient energy distribution and management",
		},
		{
			Question:    "What is the main advantage of IoT integration in smart cities?",
			Options:     [4]string{"Real-time data collection and analysis", "Reduced connectivity", "Manual processes", "Limited automation"},
			Explanation: "IoT integration enables real-time monitoring and automated responses",
		},
	},
}

var urbanDevelopmentTemplates = TemplateSet{
	Analysis: domain.ContentAnalysis{
		Summary: "Urban development trends and planning strategies. This material covers modern approaches to urban growth, sustainable development, and city planning methodologies.",
		KeyTopics: []string{
			"Urban Planning",
			"Sustainable Development",
			"City Growth",
			"Infrastructure Planning",
			"Community Development",
			"Environmental Impact",
		},
		KeyConcepts: []string{
			"Sustainable Urban Growth",
			"Smart Infrastructure",
			"Community Planning",
			"Environmental Sustainability",
			"Economic Development",
		},
		DifficultyLevel: domain.LevelIntermediate,
		SubjectCategory: "engineering",
		LearningObjectives: []string{
			"Analyze urban development trends and patterns",
			"Evaluate sustainable development strategies",
			"Understand infrastructure planning principles",
			"Assess environmental impact of urban growth",
		},
		StudyRecommendations: []string{
			"Study successful urban development case studies",
			"Research sustainable city planning methodologies",
			"Explore infrastructure development strategies",
			"Investigate environmental impact assessment methods",
		},
		SuggestedQuizQuestions: []domain.SuggestedQuestion{
			{Question: "What is the main focus of modern urban development?", Topic: "Urban Planning", Difficulty: domain.DifficultyEasy},
			{Question: "Which approach is most effective for sustainable urban growth?", Topic: "Sustainable Development", Difficulty: domain.DifficultyMedium},
		},
	},
	Questions: []QuestionTemplate{
		{
			Question:    "What is the main focus of modern urban development?",
			Options:     [4]string{"Sustainable growth and technology integration", "Population reduction", "Traditional methods only", "Avoiding innovation"},
			Explanation: "Modern urban development focuses on sustainable growth and technology integration",
		},
		{
			Question:    "Which approach is most effective for sustainable urban growth?",
			Options:     [4]string{"Data-driven decision making", "Random development", "Ignoring technology", "Avoiding data"},
			Explanation: "Data-driven approaches enable more effective and sustainable urban planning",
		},
		{
			Question:    "What is a key benefit of smart urban infrastructure?",
			Options:     [4]string{"Improved efficiency and sustainability", "Increased manual work", "Higher costs", "Reduced technology"},
			Explanation: "Smart urban infrastructure provides improved efficiency and environmental sustainability",
		},
		{
			Question:    "Which factor is most important for sustainable energy in cities?",
			Options:     [4]string{"Renewable energy sources", "Fossil fuel dependence", "Increased consumption", "Reduced technology"},
			Explanation: "Renewable energy sources are essential for sustainable urban energy systems",
		},
		{
			Question:    "What is the primary goal of energy efficiency in urban development?",
			Options:     [4]string{"Reduce energy consumption", "Increase energy costs", "Waste energy resources", "Ignore environmental impact"},
			Explanation: "Energy efficiency in urban development aims to reduce consumption while maintaining performance",
		},
	},
}

// Placeholder record for documents no rule recognizes.
var genericTemplates = TemplateSet{
	Analysis: domain.ContentAnalysis{
		Summary:         "Educational material uploaded successfully. Content analysis in progress.",
		KeyTopics:       []string{"Topic 1", "Topic 2", "Topic 3", "Topic 4"},
		KeyConcepts:     []string{"Concept 1", "Concept 2", "Concept 3"},
		DifficultyLevel: domain.LevelBeginner,
		SubjectCategory: "general",
		LearningObjectives: []string{
			"Objective 1",
			"Objective 2",
			"Objective 3",
		},
		StudyRecommendations: []string{
			"Recommendation 1",
			"Recommendation 2",
			"Recommendation 3",
		},
		SuggestedQuizQuestions: []domain.SuggestedQuestion{
			{Question: "What is the main topic of this material?", Topic: "General", Difficulty: domain.DifficultyEasy},
			{Question: "Which concept is most important?", Topic: "General", Difficulty: domain.DifficultyMedium},
		},
	},
	Questions: []QuestionTemplate{
		{
			Question:    "What is the main focus of this {topic} material? (Question {n})",
			Options:     [4]string{"Core concepts and fundamental understanding", "Advanced technical details", "Historical background", "Practical applications"},
			Explanation: "This question tests your understanding of the main topic in question {n}",
		},
	},
}

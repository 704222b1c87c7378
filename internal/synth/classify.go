// Package synth holds the deterministic analysis and quiz synthesis engine:
// filename and body classifiers, the static template bank, and the
// synthesizers that read from it.
package synth

import (
	"strings"

	"studybyte/internal/domain"
)

type domainRule struct {
	domain   domain.ContentDomain
	keywords []string // all must be present
}

// Evaluated top to bottom; the first rule whose keywords all occur wins.
var domainRules = []domainRule{
	{domain: domain.DomainSmartCity, keywords: []string{"smart", "city"}},
	{domain: domain.DomainUrbanDevelopment, keywords: []string{"urban", "development"}},
}

// Classify maps a filename onto a content domain. Matching is a
// case-insensitive substring test, so "SmartCity_Notes.pdf" and
// "city-of-smart-things.txt" both resolve to SmartCity.
func Classify(filename string) domain.ContentDomain {
	name := strings.ToLower(filename)
	for _, rule := range domainRules {
		if containsAll(name, rule.keywords) {
			return rule.domain
		}
	}
	return domain.DomainGeneric
}

type themeRule struct {
	theme domain.ContentTheme
	all   []string
	any   []string
}

var themeRules = []themeRule{
	{theme: domain.ThemeSmartCity, all: []string{"smart", "city"}},
	{theme: domain.ThemeEnergy, all: []string{"energy"}},
	{theme: domain.ThemeCalculus, any: []string{"calculus", "derivative"}},
	{theme: domain.ThemeHistory, any: []string{"war", "history"}},
}

// ClassifyContent maps a document body onto a theme for the section fallbacks.
func ClassifyContent(content string) domain.ContentTheme {
	body := strings.ToLower(content)
	for _, rule := range themeRules {
		if len(rule.all) > 0 && !containsAll(body, rule.all) {
			continue
		}
		if len(rule.any) > 0 && !containsAny(body, rule.any) {
			continue
		}
		return rule.theme
	}
	return domain.ThemeGeneric
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

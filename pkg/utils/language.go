package utils

import "strings"

// Keyword sets for language detection. Matching is plain substring
// containment on the lowercased text, not token boundaries.
var englishKeywords = []string{
	"show", "find", "suggest", "recommend", "search", "want", "need",
	"looking", "cheap", "expensive", "budget", "luxury", "family",
	"package", "tour", "trip", "visit", "go", "travel",
}

var urduKeywords = []string{
	"dikhao", "dikha", "batao", "bata", "chahiye", "chahie",
	"lena hai", "lena", "jana hai", "jana", "sasta", "mahanga",
	"din", "hazar", "rupay", "family", "khandan",
}

// DetectLanguage classifies text as english, urdu, or mixed by counting
// keyword hits from each set. Urdu wins outright when it has more hits;
// both sets hitting means mixed; english is the default.
func DetectLanguage(text string) string {
	lower := strings.ToLower(text)

	englishCount := 0
	for _, keyword := range englishKeywords {
		if strings.Contains(lower, keyword) {
			englishCount++
		}
	}

	urduCount := 0
	for _, keyword := range urduKeywords {
		if strings.Contains(lower, keyword) {
			urduCount++
		}
	}

	if urduCount > englishCount && urduCount > 0 {
		return "urdu"
	}
	if englishCount > 0 && urduCount > 0 {
		return "mixed"
	}
	return "english"
}

// HasUrduContent reports whether any Roman-Urdu keyword appears in the text.
func HasUrduContent(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range urduKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"raahi/internal/models/agent_models"
)

func TestParseDestination(t *testing.T) {
	parser := NewParserService()

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"alias resolves to canonical", "show hunza valley packages", "Hunza"},
		{"alias naran kaghan", "naran kaghan trip chahiye", "Naran"},
		{"direct match", "find swat tours", "Swat"},
		{"alias prefix swallows plural", "fairy meadows camping", "Fairy meadows"},
		{"multi word destination title cased", "nathia gali in december", "Nathia Gali"},
		{"substring match inside longer token", "packages for hunzaabad", "Hunza"},
		{"no destination", "show me something nice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parser.Parse(tt.query)
			assert.Equal(t, tt.expected, result.Destination)
		})
	}
}

func TestParseDuration(t *testing.T) {
	parser := NewParserService()

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"plain days", "hunza for 5 days", 5},
		{"din form", "3 din ka trip", 3},
		{"weekend forces two days", "weekend trip", 2},
		{"weekend beats numeric match", "weekend trip for 5 days", 2},
		{"week fills seven when unset", "one week in skardu", 7},
		{"numeric wins over week", "5 days this week", 5},
		{"no duration", "show hunza packages", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parser.Parse(tt.query)
			assert.Equal(t, tt.expected, result.Duration)
		})
	}
}

func TestParseBudget(t *testing.T) {
	parser := NewParserService()

	tests := []struct {
		name       string
		query      string
		budget     int
		travelType string
	}{
		{"under k suffix", "packages under 20k", 20000, ""},
		{"bare k suffix", "20k packages", 20000, ""},
		{"rupees form", "25000 rupees max", 25000, ""},
		{"rs prefix", "rs. 18000", 18000, ""},
		{"keyword sets ceiling and type", "sasta packages dikhao", 15000, "budget"},
		{"luxury keyword sets type only", "luxury trip to hunza", 0, "luxury"},
		{"numeric wins over keyword ceiling", "cheap packages under 40k", 40000, "budget"},
		{"no budget", "show hunza packages", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parser.Parse(tt.query)
			assert.Equal(t, tt.budget, result.Budget, "budget")
			assert.Equal(t, tt.travelType, result.TravelType, "travelType")
		})
	}
}

func TestParseTravelers(t *testing.T) {
	parser := NewParserService()

	tests := []struct {
		name       string
		query      string
		travelers  int
		travelType string
	}{
		{"people pattern", "trip for 6 people", 6, ""},
		{"solo overrides numeric", "solo trip for 3 people", 1, ""},
		{"couple keyword", "couple trip to murree", 2, ""},
		{"family forces four and type", "family trip with 2 people", 4, "family"},
		{"for n fallback", "package for 3", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parser.Parse(tt.query)
			assert.Equal(t, tt.travelers, result.Travelers, "travelers")
			assert.Equal(t, tt.travelType, result.TravelType, "travelType")
		})
	}
}

func TestParseTravelTypeAndIntent(t *testing.T) {
	parser := NewParserService()

	result := parser.Parse("book a trekking tour in chitral")
	assert.Equal(t, agent_models.TravelTypeAdventure, result.TravelType)
	assert.Equal(t, agent_models.IntentBook, result.Intent)

	result = parser.Parse("compare hunza and swat options")
	assert.Equal(t, agent_models.IntentCompare, result.Intent)

	result = parser.Parse("hunza")
	assert.Equal(t, agent_models.IntentBrowse, result.Intent, "intent defaults to browse")
}

func TestParseLanguage(t *testing.T) {
	parser := NewParserService()

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"english default", "hunza valley", agent_models.LanguageEnglish},
		{"urdu keywords dominate", "hunza ke packages dikhao sasta", agent_models.LanguageUrdu},
		{"both sets hit means mixed", "show me sasta packages", agent_models.LanguageMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parser.Parse(tt.query)
			assert.Equal(t, tt.expected, result.Language)
		})
	}
}

func TestParseIsPure(t *testing.T) {
	parser := NewParserService()

	first := parser.Parse("family trip to hunza under 30k for 5 days")
	second := parser.Parse("family trip to hunza under 30k for 5 days")
	assert.Equal(t, first, second)
}

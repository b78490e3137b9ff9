package services

import (
	"math/rand"
	"strings"

	"raahi/internal/models/agent_models"
	"raahi/internal/models/response_models"
	"raahi/pkg/utils"
)

// Score thresholds for the per-package match-tier marker.
const (
	topTierScore = 80
	midTierScore = 60
)

var greetingKeywords = []string{"hi", "hello", "hey", "salam", "assalam"}

type ResponseServiceInterface interface {
	Compose(rawQuery string, recommendations []response_models.PackageRecommendation, parsed agent_models.ParsedQuery) string
	Suggestions(parsed agent_models.ParsedQuery) []string
}

// ResponseService turns ranked recommendations into a chat reply using the
// canned template sets. The random source is injected so greeting selection
// is deterministic under test.
type ResponseService struct {
	rng *rand.Rand
}

func NewResponseService(rng *rand.Rand) ResponseServiceInterface {
	return &ResponseService{rng: rng}
}

// Compose picks the reply in three stages: greeting short-circuit, then a
// clarifying question for criteria-free queries, then the count-bucketed
// body with per-package summary lines.
func (s *ResponseService) Compose(rawQuery string, recommendations []response_models.PackageRecommendation, parsed agent_models.ParsedQuery) string {
	language := parsed.Language
	if language == "" {
		language = agent_models.LanguageEnglish
	}

	// Greetings fire before everything else, but only on short messages.
	lower := strings.ToLower(rawQuery)
	if len(strings.Fields(rawQuery)) <= 3 {
		for _, keyword := range greetingKeywords {
			if strings.Contains(lower, keyword) {
				greetings := utils.GreetingTemplates(language)
				return greetings[s.rng.Intn(len(greetings))]
			}
		}
	}

	if parsed.Destination == "" && parsed.Budget == 0 && parsed.Duration == 0 && parsed.TravelType == "" {
		var missing []string
		if parsed.Destination == "" {
			missing = append(missing, "destination")
		}
		if parsed.Budget == 0 && parsed.Duration == 0 {
			missing = append(missing, "budget")
		}
		if len(missing) > 0 {
			return utils.ClarifyingQuestion(language, missing)
		}
	}

	data := utils.TemplateData{
		Count:       len(recommendations),
		Destination: parsed.Destination,
		Budget:      parsed.Budget,
		Duration:    parsed.Duration,
	}
	for i, rec := range recommendations {
		if i == 0 || rec.Price < data.MinPrice {
			data.MinPrice = rec.Price
		}
		if rec.Price > data.MaxPrice {
			data.MaxPrice = rec.Price
		}
	}

	body := utils.RenderSummary(language, data)
	if len(recommendations) == 0 {
		return body
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n")
	for _, rec := range recommendations {
		b.WriteString(matchTierMarker(rec.MatchScore))
		b.WriteString(" ")
		b.WriteString(utils.FormatPackageLine(rec, language))
		b.WriteString("\n")
	}
	return b.String()
}

// Suggestions proposes up to three follow-up prompts for fields the user has
// not specified yet.
func (s *ResponseService) Suggestions(parsed agent_models.ParsedQuery) []string {
	var suggestions []string

	if parsed.Language == agent_models.LanguageUrdu {
		if parsed.Destination == "" {
			suggestions = append(suggestions, "Hunza packages dikhao", "Swat ke liye options")
		}
		if parsed.Budget == 0 {
			suggestions = append(suggestions, "20k ke andar packages", "Sasta packages")
		}
	} else {
		if parsed.Destination == "" {
			suggestions = append(suggestions, "Show me Hunza packages", "Find Swat tours")
		}
		if parsed.Budget == 0 {
			suggestions = append(suggestions, "Under 30k packages", "Budget friendly trips")
		}
		if parsed.Duration == 0 {
			suggestions = append(suggestions, "Weekend packages", "2 day trips")
		}
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func matchTierMarker(score int) string {
	switch {
	case score >= topTierScore:
		return "🌟"
	case score >= midTierScore:
		return "⭐"
	default:
		return "✨"
	}
}

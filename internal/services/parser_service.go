package services

import (
	"regexp"
	"strconv"
	"strings"

	"raahi/internal/models/agent_models"
	"raahi/pkg/utils"
)

// Ordered destination list. Scanned in declared order, first substring match
// wins, so more specific names must come before shorter ones they contain.
var pakistaniDestinations = []string{
	"hunza", "swat", "naran", "kaghan", "skardu", "neelum", "kashmir",
	"murree", "nathia gali", "chitral", "kalash", "kumrat", "gilgit",
	"fairy meadows", "attabad", "sharda", "kel", "kalam", "malam jabba",
	"islamabad", "lahore", "karachi",
}

// Multi-word variants mapping to a canonical destination. Checked before the
// direct list.
var destinationAliases = []struct {
	alias     string
	canonical string
}{
	{"hunza valley", "hunza"},
	{"swat valley", "swat"},
	{"naran kaghan", "naran"},
	{"kaghan valley", "naran"},
	{"neelum valley", "neelum"},
	{"fairy meadow", "fairy meadows"},
	{"nathiagali", "nathia gali"},
}

var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:day|days)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:din)`),
	regexp.MustCompile(`(?i)(\d+)-(\d+)\s*(?:day|days|din)`),
}

// Budget patterns keep their source text alongside the compiled form: a
// pattern whose source contains the letter "k" has its captured amount
// multiplied by 1000 ("thousand"/"hazar" forms are assumed pre-scaled).
var budgetPatterns = []struct {
	source string
	re     *regexp.Regexp
}{
	{`under\s*(\d+)k`, regexp.MustCompile(`(?i)under\s*(\d+)k`)},
	{`under\s*(\d+)\s*(?:thousand|hazar)`, regexp.MustCompile(`(?i)under\s*(\d+)\s*(?:thousand|hazar)`)},
	{`(\d+)k`, regexp.MustCompile(`(?i)(\d+)k`)},
	{`(\d+)\s*(?:thousand|hazar)`, regexp.MustCompile(`(?i)(\d+)\s*(?:thousand|hazar)`)},
	{`(\d+)\s*rupees`, regexp.MustCompile(`(?i)(\d+)\s*rupees`)},
	{`rs\.?\s*(\d+)`, regexp.MustCompile(`(?i)rs\.?\s*(\d+)`)},
	{`pkr\s*(\d+)`, regexp.MustCompile(`(?i)pkr\s*(\d+)`)},
}

// Budget keywords set an implied ceiling and, for the budget/luxury
// categories, the travel type as well.
var budgetKeywords = []struct {
	keyword    string
	min, max   int
	travelType string
}{
	{"cheap", 0, 15000, agent_models.TravelTypeBudget},
	{"budget", 0, 20000, agent_models.TravelTypeBudget},
	{"sasta", 0, 15000, agent_models.TravelTypeBudget},
	{"affordable", 0, 30000, agent_models.TravelTypeBudget},
	{"moderate", 30000, 60000, "standard"},
	{"expensive", 60000, 0, agent_models.TravelTypeLuxury},
	{"luxury", 100000, 0, agent_models.TravelTypeLuxury},
	{"mahanga", 60000, 0, agent_models.TravelTypeLuxury},
	{"premium", 80000, 0, agent_models.TravelTypeLuxury},
}

var travelerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:people|person|persons|log)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:travelers|travellers)`),
	regexp.MustCompile(`(?i)for\s*(\d+)`),
}

var travelTypeKeywords = []struct {
	travelType string
	keywords   []string
}{
	{agent_models.TravelTypeFamily, []string{"family", "families", "kids", "children", "khandan"}},
	{agent_models.TravelTypeAdventure, []string{"adventure", "trek", "hiking", "climb", "trekking"}},
	{agent_models.TravelTypeLuxury, []string{"luxury", "premium", "deluxe", "5 star", "vip"}},
	{agent_models.TravelTypeBudget, []string{"budget", "cheap", "affordable", "economy", "sasta"}},
	{agent_models.TravelTypeWeekend, []string{"weekend", "short", "2 days", "2 din"}},
}

var intentKeywords = []struct {
	intent   string
	keywords []string
}{
	{agent_models.IntentBook, []string{"book", "reserve", "lena hai", "booking", "reserve karna"}},
	{agent_models.IntentBrowse, []string{"show", "find", "search", "dikhao", "batao", "suggest"}},
	{agent_models.IntentCompare, []string{"compare", "vs", "difference", "better"}},
	{agent_models.IntentInfo, []string{"about", "details", "information", "kya hai"}},
}

type ParserServiceInterface interface {
	Parse(query string) agent_models.ParsedQuery
}

// ParserService extracts structured trip attributes from free text. It is a
// pure function of the query and the static tables above: no I/O, no state.
type ParserService struct{}

func NewParserService() ParserServiceInterface {
	return &ParserService{}
}

// Parse runs the extraction steps in fixed order. Every keyword check is an
// unanchored, case-insensitive substring match; that looseness is a behavior
// contract ("hunza" must match inside "hunzaabad"), not an oversight.
func (p *ParserService) Parse(query string) agent_models.ParsedQuery {
	lower := strings.ToLower(query)

	result := agent_models.ParsedQuery{
		Language: utils.DetectLanguage(query),
	}

	result.Destination = extractDestination(lower)
	result.Duration = extractDuration(query, lower)
	result.Budget, result.TravelType = extractBudget(query, lower)
	result.Travelers = extractTravelers(query, lower, &result)

	if result.TravelType == "" {
		for _, entry := range travelTypeKeywords {
			if containsAny(lower, entry.keywords) {
				result.TravelType = entry.travelType
				break
			}
		}
	}

	for _, entry := range intentKeywords {
		if containsAny(lower, entry.keywords) {
			result.Intent = entry.intent
			break
		}
	}
	if result.Intent == "" {
		result.Intent = agent_models.IntentBrowse
	}

	return result
}

func extractDestination(lower string) string {
	for _, entry := range destinationAliases {
		if strings.Contains(lower, entry.alias) {
			return capitalizeFirst(entry.canonical)
		}
	}
	for _, dest := range pakistaniDestinations {
		if strings.Contains(lower, dest) {
			return titleCaseWords(dest)
		}
	}
	return ""
}

func extractDuration(query, lower string) int {
	duration := 0
	for _, pattern := range durationPatterns {
		if match := pattern.FindStringSubmatch(query); match != nil {
			duration, _ = strconv.Atoi(match[1])
			break
		}
	}

	// "weekend" always forces 2 days, even over a numeric match; "week"
	// only fills in 7 when nothing matched. The ordering is a contract.
	if strings.Contains(lower, "weekend") {
		duration = 2
	} else if strings.Contains(lower, "week") && duration == 0 {
		duration = 7
	}
	return duration
}

func extractBudget(query, lower string) (budget int, travelType string) {
	for _, pattern := range budgetPatterns {
		match := pattern.re.FindStringSubmatch(query)
		if match == nil {
			continue
		}
		amount, _ := strconv.Atoi(match[1])
		if strings.Contains(pattern.source, "k") {
			amount *= 1000
		}
		budget = amount
		break
	}

	for _, entry := range budgetKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		if entry.max > 0 && budget == 0 {
			budget = entry.max
		}
		if entry.travelType == agent_models.TravelTypeBudget || entry.travelType == agent_models.TravelTypeLuxury {
			travelType = entry.travelType
		}
		break
	}
	return budget, travelType
}

// extractTravelers applies the numeric patterns first, then the keyword
// overrides. solo/couple/family always win over a numeric match, and
// "family" also forces the travel type.
func extractTravelers(query, lower string, result *agent_models.ParsedQuery) int {
	travelers := 0
	for _, pattern := range travelerPatterns {
		if match := pattern.FindStringSubmatch(query); match != nil {
			travelers, _ = strconv.Atoi(match[1])
			break
		}
	}

	switch {
	case strings.Contains(lower, "solo") || strings.Contains(lower, "alone"):
		travelers = 1
	case strings.Contains(lower, "couple"):
		travelers = 2
	case strings.Contains(lower, "family"):
		travelers = 4
		result.TravelType = agent_models.TravelTypeFamily
	}
	return travelers
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func titleCaseWords(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		words[i] = capitalizeFirst(word)
	}
	return strings.Join(words, " ")
}

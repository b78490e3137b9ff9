package agent_models

// Travel types a query can resolve to.
const (
	TravelTypeBudget    = "budget"
	TravelTypeLuxury    = "luxury"
	TravelTypeFamily    = "family"
	TravelTypeAdventure = "adventure"
	TravelTypeWeekend   = "weekend"
)

// Query intents.
const (
	IntentBook    = "book"
	IntentBrowse  = "browse"
	IntentCompare = "compare"
	IntentInfo    = "info"
)

// Detected languages.
const (
	LanguageEnglish = "english"
	LanguageUrdu    = "urdu"
	LanguageMixed   = "mixed"
)

// ParsedQuery holds the structured attributes extracted from a single raw
// query. Zero values mean "not mentioned"; only Intent and Language always
// carry a value. Fields are extracted independently and may contradict each
// other (e.g. travelType=budget with a luxury-sized budget).
type ParsedQuery struct {
	Destination string `json:"destination,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Budget      int    `json:"budget,omitempty"`
	Travelers   int    `json:"travelers,omitempty"`
	TravelType  string `json:"travelType,omitempty"`
	Intent      string `json:"intent"`
	Language    string `json:"language"`
}

// SearchCriteria is the subset of a parsed query the recommendation engine
// matches packages against.
type SearchCriteria struct {
	Destination string
	Duration    int
	Budget      int
	Travelers   int
	TravelType  string
}

// CandidateFilters are the coarse filters passed to the package fetch.
type CandidateFilters struct {
	Destination string
	MaxPrice    int
	Duration    int
}

// Criteria builds search criteria from a parsed query.
func (p ParsedQuery) Criteria() SearchCriteria {
	return SearchCriteria{
		Destination: p.Destination,
		Duration:    p.Duration,
		Budget:      p.Budget,
		Travelers:   p.Travelers,
		TravelType:  p.TravelType,
	}
}

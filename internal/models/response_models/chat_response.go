package response_models

import "raahi/internal/models/agent_models"

// PackageRecommendation is a candidate package plus its computed match
// score. Derived per request, never persisted.
type PackageRecommendation struct {
	PackageID    string   `json:"packageId"`
	Title        string   `json:"title"`
	Destination  string   `json:"destination"`
	Duration     int      `json:"duration"`
	Price        int      `json:"price"`
	Rating       float64  `json:"rating"`
	MatchScore   int      `json:"matchScore"`
	MatchReasons []string `json:"matchReasons,omitempty"`
	AgencyName   string   `json:"agencyName,omitempty"`
	Images       []string `json:"images"`
	Includes     []string `json:"includes,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// PackageDetail is the full package view served by the detail endpoint.
type PackageDetail struct {
	PackageID    string   `json:"packageId"`
	Title        string   `json:"title"`
	Destination  string   `json:"destination"`
	Description  string   `json:"description,omitempty"`
	Duration     int      `json:"duration"`
	Price        int      `json:"price"`
	Rating       float64  `json:"rating"`
	MaxTravelers int      `json:"maxTravelers"`
	BookingCount int      `json:"bookingCount"`
	AgencyName   string   `json:"agencyName,omitempty"`
	Images       []string `json:"images"`
	Includes     []string `json:"includes,omitempty"`
}

// ChatResult is what the pipeline entry point returns for one message.
// Error is populated only on the unexpected-failure path.
type ChatResult struct {
	Response        string                   `json:"response"`
	Recommendations []PackageRecommendation  `json:"recommendations"`
	ParsedQuery     agent_models.ParsedQuery `json:"parsedQuery"`
	ConversationID  string                   `json:"conversationId"`
	Suggestions     []string                 `json:"suggestions,omitempty"`
	Error           string                   `json:"error,omitempty"`
}

package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"raahi/internal/models/agent_models"
	"raahi/internal/models/db_models"
	"raahi/internal/models/response_models"
	"raahi/internal/repositories"
)

// MaxRecommendations caps the ranked list returned per request.
const MaxRecommendations = 5

// Match reason labels attached to scored recommendations.
const (
	ReasonDestinationMatch = "Destination match"
	ReasonDurationMatch    = "Duration fits"
	ReasonWithinBudget     = "Within budget"
	ReasonHighlyRated      = "Highly rated"
	ReasonPopular          = "Popular choice"
	ReasonTravelTypeMatch  = "Travel style match"
	ReasonCapacityFits     = "Fits your group"
	ReasonGeneralMatch     = "General match"
)

// Substituted when a candidate carries no images so the client never renders
// an empty gallery.
var fallbackImages = []string{
	"https://images.pexels.com/photos/1578750/pexels-photo-1578750.jpeg?w=800&h=600&fit=crop",
	"https://images.pexels.com/photos/1118877/pexels-photo-1118877.jpeg?w=800&h=600&fit=crop",
	"https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg?w=800&h=600&fit=crop",
}

type RecommendationServiceInterface interface {
	FindMatches(ctx context.Context, criteria agent_models.SearchCriteria) []response_models.PackageRecommendation
}

// RecommendationService fetches candidate packages, scores each against the
// parsed criteria, and returns the top matches. A fetch failure counts as
// zero candidates, never as an error to the caller.
type RecommendationService struct {
	packages repositories.PackageRepository
}

func NewRecommendationService(packages repositories.PackageRepository) RecommendationServiceInterface {
	return &RecommendationService{packages: packages}
}

// FindMatches runs the fetch→score→sort→truncate pipeline. When it comes up
// empty and the criteria named a destination or budget, it retries once with
// relaxed criteria: budget widened by half, duration dropped.
func (s *RecommendationService) FindMatches(ctx context.Context, criteria agent_models.SearchCriteria) []response_models.PackageRecommendation {
	recommendations := s.fetchAndRank(ctx, criteria)
	if len(recommendations) > 0 {
		return recommendations
	}

	if criteria.Destination == "" && criteria.Budget == 0 {
		return recommendations
	}

	relaxed := criteria
	relaxed.Duration = 0
	if relaxed.Budget > 0 {
		relaxed.Budget = int(math.Round(float64(criteria.Budget) * 1.5))
	}
	log.Info().
		Str("destination", relaxed.Destination).
		Int("budget", relaxed.Budget).
		Msg("no exact matches, retrying with relaxed criteria")

	return s.fetchAndRank(ctx, relaxed)
}

func (s *RecommendationService) fetchAndRank(ctx context.Context, criteria agent_models.SearchCriteria) []response_models.PackageRecommendation {
	filters := agent_models.CandidateFilters{
		Destination: criteria.Destination,
		MaxPrice:    criteria.Budget,
		Duration:    criteria.Duration,
	}

	candidates, err := s.packages.FetchCandidates(ctx, filters)
	if err != nil {
		log.Warn().Err(err).Msg("candidate fetch failed, treating as zero candidates")
		return []response_models.PackageRecommendation{}
	}

	return RankPackages(candidates, criteria)
}

// RankPackages scores every candidate, sorts by descending score (stable, so
// ties keep fetch order), and truncates to MaxRecommendations.
func RankPackages(candidates []db_models.Package, criteria agent_models.SearchCriteria) []response_models.PackageRecommendation {
	recommendations := make([]response_models.PackageRecommendation, 0, len(candidates))
	for _, pkg := range candidates {
		score, reasons := ScorePackage(pkg, criteria)
		recommendations = append(recommendations, buildRecommendation(pkg, score, reasons))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if len(recommendations) > MaxRecommendations {
		recommendations = recommendations[:MaxRecommendations]
	}
	return recommendations
}

// ScorePackage computes the additive 0–100 match score. Sub-scores are
// independent; criteria fields left unset contribute nothing.
func ScorePackage(pkg db_models.Package, criteria agent_models.SearchCriteria) (int, []string) {
	score := 0.0
	reasons := []string{}

	if criteria.Destination != "" &&
		strings.Contains(strings.ToLower(pkg.Destination), strings.ToLower(criteria.Destination)) {
		score += 35
		reasons = append(reasons, ReasonDestinationMatch)
	}

	if criteria.Duration > 0 {
		switch diff := absInt(pkg.Duration - criteria.Duration); {
		case diff == 0:
			score += 25
			reasons = append(reasons, ReasonDurationMatch)
		case diff == 1:
			score += 18
		case diff == 2:
			score += 10
		}
	}

	if criteria.Budget > 0 {
		ratio := float64(pkg.Price) / float64(criteria.Budget)
		switch {
		case ratio <= 0.8:
			score += 25
			reasons = append(reasons, ReasonWithinBudget)
		case ratio <= 1.0:
			score += 20
			reasons = append(reasons, ReasonWithinBudget)
		case ratio <= 1.15:
			score += 12
		case ratio <= 1.3:
			score += 5
		}
	}

	score += pkg.Rating * 2
	if pkg.Rating >= 4.5 {
		reasons = append(reasons, ReasonHighlyRated)
	}

	if pkg.BookingCount > 10 {
		score += 5
		reasons = append(reasons, ReasonPopular)
	}

	if criteria.TravelType != "" &&
		strings.Contains(strings.ToLower(pkg.Title), strings.ToLower(criteria.TravelType)) {
		score += 10
		reasons = append(reasons, ReasonTravelTypeMatch)
	}

	if criteria.Travelers > 0 && pkg.MaxTravelers >= criteria.Travelers {
		score += 5
		reasons = append(reasons, ReasonCapacityFits)
	}

	if pkg.IsActive {
		score += 5
	}

	final := int(math.Round(score))
	if final > 100 {
		final = 100
	}
	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}
	return final, reasons
}

func buildRecommendation(pkg db_models.Package, score int, reasons []string) response_models.PackageRecommendation {
	images := []string(pkg.Images)
	if len(images) == 0 {
		images = append([]string(nil), fallbackImages...)
	}

	return response_models.PackageRecommendation{
		PackageID:    pkg.ID.String(),
		Title:        pkg.Title,
		Destination:  pkg.Destination,
		Duration:     pkg.Duration,
		Price:        pkg.Price,
		Rating:       pkg.Rating,
		MatchScore:   score,
		MatchReasons: reasons,
		AgencyName:   pkg.AgencyName,
		Images:       images,
		Includes:     []string(pkg.Includes),
		Description:  pkg.Description,
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

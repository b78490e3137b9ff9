package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"raahi/internal/models/agent_models"
	"raahi/internal/models/response_models"
)

const fallbackApology = "Sorry, I encountered an error. Please try rephrasing your query or contact support."

type AgentServiceInterface interface {
	ProcessQuery(ctx context.Context, rawQuery, conversationID string) response_models.ChatResult
}

// AgentService is the pipeline entry point: parse, merge refinements against
// conversation context, record the turn, rank packages, compose the reply.
type AgentService struct {
	parser      ParserServiceInterface
	sessions    SessionServiceInterface
	recommender RecommendationServiceInterface
	composer    ResponseServiceInterface
}

func NewAgentService(
	parser ParserServiceInterface,
	sessions SessionServiceInterface,
	recommender RecommendationServiceInterface,
	composer ResponseServiceInterface,
) AgentServiceInterface {
	return &AgentService{
		parser:      parser,
		sessions:    sessions,
		recommender: recommender,
		composer:    composer,
	}
}

// ProcessQuery handles one chat turn. This is the single recovery point for
// the pipeline: any panic below becomes a generic apology with the failure
// message in the Error field, never a dropped request.
func (a *AgentService) ProcessQuery(ctx context.Context, rawQuery, conversationID string) (result response_models.ChatResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("conversation_id", conversationID).Interface("panic", r).Msg("query pipeline failed")
			result = response_models.ChatResult{
				Response:        fallbackApology,
				Recommendations: []response_models.PackageRecommendation{},
				ParsedQuery:     agent_models.ParsedQuery{},
				ConversationID:  conversationID,
				Error:           fmt.Sprintf("%v", r),
			}
		}
	}()

	conversation := a.sessions.GetOrCreate(ctx, conversationID)
	parsed := a.parser.Parse(rawQuery)

	if a.sessions.IsRefinement(rawQuery, conversation) {
		log.Debug().Str("conversation_id", conversationID).Msg("refinement query, merging previous context")
		parsed = a.sessions.Merge(conversation, parsed)
	}

	a.sessions.Update(ctx, conversationID, rawQuery, parsed)

	recommendations := a.recommender.FindMatches(ctx, parsed.Criteria())
	response := a.composer.Compose(rawQuery, recommendations, parsed)

	log.Info().
		Str("conversation_id", conversationID).
		Str("destination", parsed.Destination).
		Int("recommendations", len(recommendations)).
		Msg("query processed")

	return response_models.ChatResult{
		Response:        response,
		Recommendations: recommendations,
		ParsedQuery:     parsed,
		ConversationID:  conversationID,
		Suggestions:     a.composer.Suggestions(parsed),
	}
}

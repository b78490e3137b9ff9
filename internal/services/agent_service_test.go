package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raahi/internal/models/agent_models"
	"raahi/internal/models/db_models"
	"raahi/internal/models/response_models"
	"raahi/pkg/sessionstore"
	"raahi/pkg/utils"
)

func newAgentFixture(repo *fakePackageRepository) AgentServiceInterface {
	store := sessionstore.NewMemoryStore(SessionTimeout, time.Minute)
	return NewAgentService(
		NewParserService(),
		NewSessionService(store),
		NewRecommendationService(repo),
		NewResponseService(rand.New(rand.NewSource(1))),
	)
}

func TestProcessQueryEndToEnd(t *testing.T) {
	repo := &fakePackageRepository{
		respond: func(filters agent_models.CandidateFilters) ([]db_models.Package, error) {
			if filters.Destination == "Swat" {
				return []db_models.Package{testPackage("Swat Valley Retreat", "Swat", 3, 14000, 4.6)}, nil
			}
			return nil, nil
		},
	}
	agent := newAgentFixture(repo)

	result := agent.ProcessQuery(context.Background(), "show swat packages for 3 days under 25k", "conv_1")

	assert.Equal(t, "conv_1", result.ConversationID)
	assert.Equal(t, "Swat", result.ParsedQuery.Destination)
	assert.Equal(t, 3, result.ParsedQuery.Duration)
	assert.Equal(t, 25000, result.ParsedQuery.Budget)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Swat Valley Retreat", result.Recommendations[0].Title)
	assert.Contains(t, result.Response, "Swat Valley Retreat")
	assert.Empty(t, result.Error)
}

func TestProcessQueryRefinementKeepsContext(t *testing.T) {
	repo := &fakePackageRepository{
		respond: func(filters agent_models.CandidateFilters) ([]db_models.Package, error) {
			if filters.MaxPrice > 0 && filters.MaxPrice < 15000 {
				return nil, nil
			}
			return []db_models.Package{testPackage("Swat Valley Retreat", "Swat", 3, 14000, 4.6)}, nil
		},
	}
	agent := newAgentFixture(repo)
	ctx := context.Background()

	agent.ProcessQuery(ctx, "show swat packages for 3 days under 25k", "conv_1")
	result := agent.ProcessQuery(ctx, "cheaper options under 15k", "conv_1")

	assert.Equal(t, "Swat", result.ParsedQuery.Destination, "destination carried over from the previous turn")
	assert.Equal(t, 3, result.ParsedQuery.Duration, "duration carried over from the previous turn")
	assert.Equal(t, 15000, result.ParsedQuery.Budget, "refined budget replaces the old one")
}

func TestProcessQueryNewConversationDoesNotMerge(t *testing.T) {
	repo := &fakePackageRepository{
		respond: func(agent_models.CandidateFilters) ([]db_models.Package, error) {
			return nil, nil
		},
	}
	agent := newAgentFixture(repo)
	ctx := context.Background()

	agent.ProcessQuery(ctx, "show swat packages for 3 days", "conv_1")
	result := agent.ProcessQuery(ctx, "cheaper options under 15k", "conv_2")

	assert.Empty(t, result.ParsedQuery.Destination, "contexts are isolated per conversation")
	assert.Zero(t, result.ParsedQuery.Duration)
}

func TestProcessQueryGreeting(t *testing.T) {
	repo := &fakePackageRepository{
		respond: func(agent_models.CandidateFilters) ([]db_models.Package, error) {
			return nil, nil
		},
	}
	agent := newAgentFixture(repo)

	result := agent.ProcessQuery(context.Background(), "hi", "conv_1")
	assert.Contains(t, utils.GreetingTemplates(agent_models.LanguageEnglish), result.Response)
	assert.Empty(t, result.Recommendations)
}

type panickingRecommender struct{}

func (panickingRecommender) FindMatches(context.Context, agent_models.SearchCriteria) []response_models.PackageRecommendation {
	panic("ranker blew up")
}

func TestProcessQueryRecoversFromPanic(t *testing.T) {
	store := sessionstore.NewMemoryStore(SessionTimeout, time.Minute)
	agent := NewAgentService(
		NewParserService(),
		NewSessionService(store),
		panickingRecommender{},
		NewResponseService(rand.New(rand.NewSource(1))),
	)

	result := agent.ProcessQuery(context.Background(), "show hunza packages", "conv_1")

	assert.Equal(t, fallbackApology, result.Response)
	assert.Equal(t, "ranker blew up", result.Error)
	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, "conv_1", result.ConversationID)
}

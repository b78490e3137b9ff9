package agent_fx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"

	"raahi/internal/api/controllers"
	"raahi/internal/repositories"
	"raahi/internal/services"
)

var Module = fx.Provide(
	ProvideParserService,
	ProvideRecommendationService,
	ProvideResponseService,
	ProvideAgentService,
	ProvideChatController,
)

func ProvideParserService() services.ParserServiceInterface {
	return services.NewParserService()
}

func ProvideRecommendationService(packages repositories.PackageRepository) services.RecommendationServiceInterface {
	return services.NewRecommendationService(packages)
}

func ProvideResponseService() services.ResponseServiceInterface {
	return services.NewResponseService(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func ProvideAgentService(
	parser services.ParserServiceInterface,
	sessions services.SessionServiceInterface,
	recommender services.RecommendationServiceInterface,
	composer services.ResponseServiceInterface,
) services.AgentServiceInterface {
	return services.NewAgentService(parser, sessions, recommender, composer)
}

func ProvideChatController(agentService services.AgentServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(agentService)
}

package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"raahi/cmd/fx/agent_fx"
	"raahi/cmd/fx/packages_fx"
	"raahi/cmd/fx/session_fx"
	"raahi/internal/api/controllers"
	"raahi/internal/infra"
	"raahi/pkg/logger"
	"raahi/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	app := fx.New(
		fx.Provide(infra.InitPostgresql),
		packages_fx.Module,
		session_fx.Module,
		agent_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RegisterDatabaseLifecycle),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RegisterDatabaseLifecycle(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5001"
				}
				log.Info().Str("port", port).Msg("starting HTTP server")
				if err := engine.Run(":" + port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(chatController *controllers.ChatController, packageController *controllers.PackageController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, chatController, packageController)

	return r
}

func RegisterRoutes(r *gin.Engine, chatController *controllers.ChatController, packageController *controllers.PackageController) {
	r.GET("/health", chatController.HealthHandler)

	aiGroup := r.Group("/ai")
	aiGroup.Use(middleware.JWTAuthMiddleware())
	aiGroup.POST("/chat", chatController.ChatHandler)
	aiGroup.POST("/recommend", chatController.RecommendHandler)
	aiGroup.GET("/packages/:id", packageController.GetPackageHandler)
}

package session_fx

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"raahi/internal/services"
	"raahi/pkg/sessionstore"
)

// The janitor sweeps idle conversations well inside the session timeout.
const sweepInterval = 10 * time.Minute

var Module = fx.Provide(
	ProvideSessionStore,
	ProvideSessionService,
)

// ProvideSessionStore selects the backend from SESSION_BACKEND: "redis"
// needs REDIS_URL, anything else gets the in-process store with its janitor
// tied to the app lifecycle.
func ProvideSessionStore(lc fx.Lifecycle) (sessionstore.Store, error) {
	backend := strings.ToLower(getEnvWithDefault("SESSION_BACKEND", "memory"))

	if backend == "redis" {
		log.Info().Msg("using redis session backend")
		store, err := sessionstore.NewRedisStore(context.Background(), os.Getenv("REDIS_URL"), services.SessionTimeout)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return store.Close()
			},
		})
		return store, nil
	}

	log.Info().Msg("using in-memory session backend; conversation context will not survive restarts")
	store := sessionstore.NewMemoryStore(services.SessionTimeout, sweepInterval)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			store.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			store.Stop()
			return nil
		},
	})
	return store, nil
}

func ProvideSessionService(store sessionstore.Store) services.SessionServiceInterface {
	return services.NewSessionService(store)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

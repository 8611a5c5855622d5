package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"honesttour/internal/api/controllers"
	"honesttour/internal/infra"
	"honesttour/internal/repositories"
	"honesttour/internal/services"
	"honesttour/pkg/utils"
)

var Module = fx.Provide(
	provideTokenManager, provideVerifier, provideSessionRepo, provideAuthService, provideAuthController,
)

func provideTokenManager(cfg infra.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.SessionMaxAge)
}

func provideVerifier(cfg infra.Config) services.CredentialVerifier {
	return services.NewGoogleVerifier(cfg.GoogleClientID)
}

func provideSessionRepo(db *gorm.DB) repositories.SessionRepositoryInterface {
	return repositories.NewSessionRepository(db)
}

func provideAuthService(
	verifier services.CredentialVerifier,
	sessionRepo repositories.SessionRepositoryInterface,
	tokens *utils.TokenManager,
	cfg infra.Config,
) services.AuthServiceInterface {
	return services.NewAuthService(verifier, sessionRepo, tokens, cfg.SessionMaxAge)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}

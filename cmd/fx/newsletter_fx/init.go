package newsletter_fx

import (
	"go.uber.org/fx"

	"honesttour/internal/api/controllers"
	"honesttour/internal/infra"
	"honesttour/internal/services"
)

var Module = fx.Provide(
	provideNewsletterService, provideNewsletterController,
)

func provideNewsletterService(cfg infra.Config) services.NewsletterServiceInterface {
	return services.NewEmailOctopusService(cfg.NewsletterAPIKey, cfg.NewsletterListID)
}

func provideNewsletterController(newsletterService services.NewsletterServiceInterface) *controllers.NewsletterController {
	return controllers.NewNewsletterController(newsletterService)
}

package tours_fx

import (
	"go.uber.org/fx"

	"honesttour/internal/api/controllers"
	"honesttour/internal/infra"
	"honesttour/internal/repositories"
	"honesttour/internal/services"
	mem "honesttour/pkg/memcache"
)

var Module = fx.Provide(
	provideTourRepo, provideTourCache, provideTourService, provideToursController,
)

func provideTourRepo(cms *infra.CMSClient) repositories.TourRepositoryInterface {
	return repositories.NewTourRepository(cms)
}

func provideTourCache(cfg infra.Config) mem.TourListCache {
	return mem.NewTourListCache(cfg.CacheTTL)
}

func provideTourService(
	tourRepo repositories.TourRepositoryInterface,
	cache mem.TourListCache,
	cfg infra.Config,
) services.TourServiceInterface {
	return services.NewTourService(tourRepo, cache, cfg.CMSMediaURL)
}

func provideToursController(tourService services.TourServiceInterface) *controllers.ToursController {
	return controllers.NewToursController(tourService)
}

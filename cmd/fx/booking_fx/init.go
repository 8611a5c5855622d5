package booking_fx

import (
	"go.uber.org/fx"

	"honesttour/internal/api/controllers"
	"honesttour/internal/infra"
	"honesttour/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideBookingController,
)

func provideBookingService(cfg infra.Config) services.BookingServiceInterface {
	return services.NewBookingService(cfg.WhatsAppPhone)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}

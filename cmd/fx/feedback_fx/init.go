package feedback_fx

import (
	"go.uber.org/fx"

	"honesttour/internal/api/controllers"
	"honesttour/internal/infra"
	"honesttour/internal/repositories"
	"honesttour/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController,
)

func provideFeedbackRepo(cms *infra.CMSClient) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(cms)
}

func provideFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}

package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"honesttour/cmd/fx/auth_fx"
	"honesttour/cmd/fx/booking_fx"
	"honesttour/cmd/fx/cms_fx"
	"honesttour/cmd/fx/db_fx"
	"honesttour/cmd/fx/feedback_fx"
	"honesttour/cmd/fx/newsletter_fx"
	"honesttour/cmd/fx/tours_fx"
	"honesttour/internal/api/controllers"
	"honesttour/internal/infra"
	"honesttour/pkg/middleware"
	"honesttour/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fx.Provide(infra.LoadConfig),
		db_fx.Module,
		cms_fx.Module,
		tours_fx.Module,
		feedback_fx.Module,
		auth_fx.Module,
		newsletter_fx.Module,
		booking_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tokens *utils.TokenManager,
	toursController *controllers.ToursController,
	feedbackController *controllers.FeedbackController,
	authController *controllers.AuthController,
	newsletterController *controllers.NewsletterController,
	bookingController *controllers.BookingController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tokens, toursController, feedbackController, authController, newsletterController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenManager,
	toursController *controllers.ToursController,
	feedbackController *controllers.FeedbackController,
	authController *controllers.AuthController,
	newsletterController *controllers.NewsletterController,
	bookingController *controllers.BookingController) {

	toursGroup := r.Group("/tours")
	toursGroup.GET("", toursController.ListTours)
	toursGroup.GET("/filters", toursController.FilterMetadata)
	toursGroup.GET("/:id", toursController.GetTour)
	toursGroup.GET("/:id/feedback", feedbackController.TourFeedback)
	toursGroup.GET("/:id/feedback/stats", feedbackController.TourFeedbackStats)

	feedbackGroup := r.Group("/feedbacks")
	feedbackGroup.GET("", feedbackController.ListFeedback)
	feedbackGroup.POST("", feedbackController.AddFeedback)
	feedbackGroup.PUT("/:id", feedbackController.UpdateFeedback)
	feedbackGroup.DELETE("/:id", feedbackController.DeleteFeedback)

	authGroup := r.Group("/auth")
	authGroup.POST("/google", authController.GoogleSignIn)
	authGroup.GET("/session", middleware.SessionAuthMiddleware(tokens), authController.GetSession)
	authGroup.POST("/logout", middleware.SessionAuthMiddleware(tokens), authController.Logout)

	r.POST("/newsletter/subscribe", newsletterController.Subscribe)

	bookingGroup := r.Group("/bookings")
	bookingGroup.POST("/whatsapp", bookingController.InquiryLink)
	bookingGroup.GET("/whatsapp", bookingController.GenericInquiryLink)
}

package routes

import (
	"regexp"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/controllers"
	"github.com/shaiiram/website1000-2000/middleware"
	"github.com/shaiiram/website1000-2000/services"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// SetupRouter builds the gin.Engine with every route of the site: the
// public flow, auth, the customer area and the admin panel.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RecoveryMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://1000-2000.co.il", "https://www.1000-2000.co.il"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Custom "slug" rule for experience identifiers.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	}

	rdb := utils.GetRedis()

	llm := services.NewLLMService(cfg)
	web := services.NewWebContextService()
	recommend := services.NewRecommendService(llm, web)
	uploads := services.NewUploadService(cfg)

	userController := controllers.NewUserController(rdb, cfg)
	profileController := controllers.NewUserProfileController(rdb)
	experienceController := controllers.NewExperienceController()
	flowController := controllers.NewFlowController(recommend)
	bookingController := controllers.NewBookingController()
	chatController := controllers.NewChatController(llm)
	analyticsController := controllers.NewAnalyticsController()
	adminBookings := controllers.NewAdminBookingController(cfg)
	adminExperiences := controllers.NewAdminExperienceController(uploads)
	adminEmails := controllers.NewAdminEmailController(cfg)
	adminUsers := controllers.NewAdminUserController()

	r.POST("/auth/register", userController.Register)
	r.POST("/auth/confirm-otp", userController.ConfirmOTP)
	r.POST("/auth/login", userController.Login)
	r.POST("/auth/forgot-password", userController.ForgotPassword)
	r.POST("/auth/reset-password", userController.ResetPassword)
	r.GET("/auth/login-redirect", userController.GoogleLogin)
	r.GET("/auth/google/callback", userController.GoogleCallback)

	// Public catalog and chatbot
	r.GET("/experiences", experienceController.List)
	r.GET("/experiences/:slug", experienceController.GetBySlug)
	r.POST("/chat", chatController.Ask)

	// Guided search flow, state in query parameters
	flow := r.Group("/flow")
	{
		flow.GET("/search", flowController.Search)
		flow.GET("/transition", flowController.Transition)
		flow.GET("/select-month", flowController.SelectMonth)
		flow.GET("/results", flowController.Results)
		flow.GET("/thank-you", flowController.ThankYou)
	}

	userGroup := r.Group("/user", middleware.JWTAuthMiddleware())
	{
		userGroup.GET("/profile", profileController.GetProfile)
		userGroup.GET("/bookings", profileController.MyBookings)
		userGroup.POST("/bookings", bookingController.Create)
		userGroup.POST("/logout", profileController.Logout)
	}

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
	{
		admin.GET("/bookings", adminBookings.List)
		admin.PUT("/bookings/:id/status", adminBookings.UpdateStatus)
		admin.GET("/bookings/:id/email-draft", adminBookings.EmailDraft)
		admin.POST("/bookings/:id/email", adminBookings.SendEmail)

		admin.POST("/experiences", adminExperiences.Create)
		admin.PUT("/experiences/:slug", adminExperiences.Update)
		admin.DELETE("/experiences/:slug", adminExperiences.Delete)
		admin.POST("/uploads", adminExperiences.Upload)

		admin.GET("/emails/templates", adminEmails.Templates)
		admin.POST("/emails", adminEmails.Send)
		admin.POST("/emails/bulk", adminEmails.SendBulk)

		admin.GET("/users", adminUsers.List)
		admin.GET("/analytics", analyticsController.Dashboard)
	}

	return r
}

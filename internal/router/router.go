// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agrikom/agrimarket-backend/internal/config"
	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/handlers"
	"github.com/agrikom/agrimarket-backend/internal/ledger"
	"github.com/agrikom/agrimarket-backend/internal/middleware"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
	"github.com/agrikom/agrimarket-backend/internal/ws"
)

// Initialize wires repositories, services and handlers into the HTTP
// surface. The returned robot service is run by the caller so shutdown can
// stop its simulator.
func Initialize(repos *repository.Repositories, bus *events.Bus, l *ledger.Ledger, cfg *config.Config) (*gin.Engine, *services.RobotService) {
	// Services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		panic(err)
	}
	settingsService := services.NewSettingsService(repos.Settings, bus)
	marketplaceService := services.NewMarketplaceService(repos.Products, repos.Likes, bus)
	orderService := services.NewOrderService(repos.Orders, marketplaceService, l, settingsService, bus)
	articleService := services.NewArticleService(repos.Articles, settingsService, bus)
	forumService := services.NewForumService(repos.Forum, bus)
	chatService := services.NewChatService(repos.Chat, bus)
	robotService := services.NewRobotService(repos.Robot, bus)
	authService := services.NewAuthService(repos.Users, cfg)
	adminService := services.NewAdminService(repos.Users, repos.Products, repos.Articles)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService, l)
	articleHandler := handlers.NewArticleHandler(articleService)
	forumHandler := handlers.NewForumHandler(forumService)
	chatHandler := handlers.NewChatHandler(chatService)
	robotHandler := handlers.NewRobotHandler(robotService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	adminHandler := handlers.NewAdminHandler(adminService, articleService)

	hub := ws.NewHub(bus)

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/uploads", "./uploads")

	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Marketplace routes
		v1.GET("/marketplace", middleware.OptionalAuth(), marketplaceHandler.GetMarketplace)

		products := v1.Group("/products")
		products.Use(middleware.AuthRequired())
		{
			products.GET("", marketplaceHandler.GetCatalog)
			products.POST("", marketplaceHandler.CreateProduct)
			products.POST("/upload", middleware.UploadRateLimit(), marketplaceHandler.UploadImage)
			products.GET("/:id", marketplaceHandler.GetProduct)
			products.PUT("/:id", marketplaceHandler.UpdateProduct)
			products.DELETE("/:id", marketplaceHandler.DeleteProduct)
			products.POST("/:id/like", marketplaceHandler.ToggleLike)
		}
		v1.GET("/likes", middleware.AuthRequired(), marketplaceHandler.GetLikes)

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/selling", orderHandler.GetSellerOrders)
			orders.GET("/buying", orderHandler.GetBuyerOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/status", orderHandler.AdvanceOrder)
		}
		v1.GET("/revenue", middleware.AuthRequired(), orderHandler.GetRevenue)

		// Educational article routes
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.GetPublished)
			articles.GET("/mine", middleware.AuthRequired(), articleHandler.GetMine)
			articles.GET("/:id", articleHandler.ReadArticle)
			articles.POST("", middleware.AuthRequired(), articleHandler.CreateArticle)
			articles.PUT("/:id", middleware.AuthRequired(), articleHandler.UpdateArticle)
			articles.POST("/:id/submit", middleware.AuthRequired(), articleHandler.SubmitArticle)
		}

		// Forum routes
		forum := v1.Group("/forum")
		{
			forum.GET("", forumHandler.GetDiscussions)
			forum.GET("/:id", forumHandler.GetDiscussion)
			forum.GET("/:id/comments", forumHandler.GetComments)
			forum.POST("", middleware.AuthRequired(), forumHandler.CreateDiscussion)
			forum.POST("/:id/like", middleware.AuthRequired(), forumHandler.LikeDiscussion)
			forum.POST("/:id/comments", middleware.AuthRequired(), forumHandler.AddComment)
		}

		// Chat routes
		chat := v1.Group("/chat")
		chat.Use(middleware.AuthRequired())
		{
			chat.POST("", chatHandler.Send)
			chat.GET("/:peer", chatHandler.History)
		}

		// Robot telemetry routes
		robot := v1.Group("/robot")
		robot.Use(middleware.AuthRequired())
		{
			robot.GET("/:id/status", robotHandler.GetStatus)
			robot.GET("/:id/activities", robotHandler.GetActivities)
			robot.GET("/:id/logs", robotHandler.GetLogs)
		}

		// Settings and notifications
		settings := v1.Group("/settings")
		settings.Use(middleware.AuthRequired())
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.SaveSettings)
		}
		v1.GET("/notifications", middleware.AuthRequired(), settingsHandler.GetNotifications)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/users", adminHandler.GetUsers)
			admin.PUT("/users/:key/status", adminHandler.SetUserStatus)
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/articles/pending", adminHandler.GetPendingArticles)
			admin.POST("/articles/:id/review", adminHandler.ReviewArticle)
		}

		// Change notification stream. Notifications carry owner identities,
		// so the upgrade itself requires a valid token.
		v1.GET("/ws", middleware.AuthRequired(), hub.Handler)
	}

	return r, robotService
}

package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skillconnect/server/internal/handlers"
	"github.com/skillconnect/server/internal/middleware"
)

type RouterConfig struct {
	AuthHandler         *handlers.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	UserHandler         *handlers.UserHandler
	PostHandler         *handlers.PostHandler
	FollowHandler       *handlers.FollowHandler
	LikeHandler         *handlers.LikeHandler
	LearningPlanHandler *handlers.LearningPlanHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	api.POST("/users/register", cfg.AuthHandler.Register)
	api.POST("/users/login", cfg.AuthHandler.Login)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.POST("/users/logout", cfg.AuthHandler.Logout)
	protected.GET("/me", cfg.UserHandler.GetMe)
	protected.PUT("/me/password", cfg.UserHandler.ChangePassword)
	protected.GET("/users", cfg.UserHandler.List)
	protected.GET("/users/:id", cfg.UserHandler.GetByID)
	protected.PUT("/users/:id", cfg.UserHandler.Update)
	protected.DELETE("/users/:id", cfg.UserHandler.Delete)
	protected.GET("/exists/email/:email", cfg.UserHandler.ExistsByEmail)
	protected.GET("/exists/username/:username", cfg.UserHandler.ExistsByUsername)

	protected.POST("/posts", cfg.PostHandler.Create)
	protected.GET("/posts/:id", cfg.PostHandler.GetByID)
	protected.GET("/users/:id/posts", cfg.PostHandler.ListByUser)
	protected.DELETE("/posts/:id", cfg.PostHandler.Delete)

	protected.POST("/follow", cfg.FollowHandler.Follow)
	protected.DELETE("/follow", cfg.FollowHandler.Unfollow)
	protected.GET("/follow/status", cfg.FollowHandler.IsFollowing)
	protected.GET("/users/:id/followers/count", cfg.FollowHandler.FollowerCount)
	protected.GET("/users/:id/following/count", cfg.FollowHandler.FollowingCount)

	protected.POST("/likes/:postId", cfg.LikeHandler.Like)
	protected.DELETE("/likes/:postId", cfg.LikeHandler.Unlike)
	protected.GET("/likes/:postId", cfg.LikeHandler.ListByPost)
	protected.GET("/likes/:postId/count", cfg.LikeHandler.CountByPost)

	protected.POST("/learning-plans", cfg.LearningPlanHandler.Create)
	protected.GET("/learning-plans/:id", cfg.LearningPlanHandler.GetByID)
	protected.GET("/users/:id/learning-plans", cfg.LearningPlanHandler.ListByUser)
	protected.PUT("/learning-plans/:id", cfg.LearningPlanHandler.Update)
	protected.DELETE("/learning-plans/:id", cfg.LearningPlanHandler.Delete)
	protected.POST("/learning-plans/:id/items", cfg.LearningPlanHandler.AddItem)
	protected.PUT("/learning-plan-items/:itemId/complete", cfg.LearningPlanHandler.CompleteItem)
	protected.DELETE("/learning-plan-items/:itemId", cfg.LearningPlanHandler.RemoveItem)

	return router
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/skillconnect/server/internal/clients/redis"
	"github.com/skillconnect/server/internal/db"
	"github.com/skillconnect/server/internal/handlers"
	"github.com/skillconnect/server/internal/logger"
	"github.com/skillconnect/server/internal/middleware"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/server"
	"github.com/skillconnect/server/internal/services"
	"github.com/skillconnect/server/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Redis (optional; counts fall back to SQL when absent)
	counterCache, err := redis.NewCounterCache(log)
	if err != nil {
		log.Warn("Redis counter cache unavailable", "error", err)
		counterCache = nil
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	postRepo := repos.NewPostRepo(thePG, log)
	followRepo := repos.NewFollowRepo(thePG, log)
	likeRepo := repos.NewLikeRepo(thePG, log)
	learningPlanRepo := repos.NewLearningPlanRepo(thePG, log)
	learningPlanItemRepo := repos.NewLearningPlanItemRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	postService := services.NewPostService(thePG, log, postRepo, userRepo)
	followService := services.NewFollowService(thePG, log, followRepo, userRepo, counterCache)
	likeService := services.NewLikeService(thePG, log, likeRepo, postRepo, counterCache)
	learningPlanService := services.NewLearningPlanService(thePG, log, learningPlanRepo, learningPlanItemRepo, userRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(log, userService)
	postHandler := handlers.NewPostHandler(postService)
	followHandler := handlers.NewFollowHandler(followService)
	likeHandler := handlers.NewLikeHandler(likeService)
	learningPlanHandler := handlers.NewLearningPlanHandler(log, learningPlanService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:         authHandler,
		AuthMiddleware:      authMiddleware,
		UserHandler:         userHandler,
		PostHandler:         postHandler,
		FollowHandler:       followHandler,
		LikeHandler:         likeHandler,
		LearningPlanHandler: learningPlanHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}

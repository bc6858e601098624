package app

import (
	"context"
	"net/http"

	"aws-auth-service/internal/auth/handler"
	"aws-auth-service/internal/auth/provider/google"
	"aws-auth-service/internal/aws"
	"aws-auth-service/internal/config"
	"aws-auth-service/internal/middleware"
	"aws-auth-service/internal/session"
	"aws-auth-service/internal/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	// Token expiry tracks the session TTL so a valid-signature token
	// can never outlive its backing session record.
	codec := token.New(cfg.TokenSecret, session.DefaultTTL)

	sessionStore := session.NewMemoryStore(session.DefaultCapacity, session.DefaultTTL)

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, err
	}

	authHandler := handler.NewHandler(
		googleProvider,
		sessionStore,
		codec,
		session.DefaultTTL,
	)

	awsHandler := aws.NewHandler(
		aws.NewBridge(aws.NewSTSClient(cfg.AWSRegion), cfg.AWSRoleARN),
		sessionStore,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World!"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	authed := router.Group("/")
	authed.Use(middleware.RequireAuth(codec))

	authed.GET("/welcome", authHandler.Welcome)
	awsHandler.RegisterRoutes(authed)

	return router, nil
}

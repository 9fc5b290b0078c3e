package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	// Health check
	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupBookRoutes(router, c)
	setupReviewRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/signup", c.UserHandler.Register)
	r.POST("/login", c.UserHandler.Login)
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(r *gin.Engine, c *container.Container) {
	books := r.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:bookId", c.BookHandler.GetBookDetail)
		books.POST("", middleware.AuthMiddleware(c.JWTManager), c.BookHandler.CreateBook)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(r *gin.Engine, c *container.Container) {
	reviews := r.Group("/books/:bookId/reviews")
	reviews.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		reviews.POST("", c.ReviewHandler.SubmitReview)
		reviews.PUT("/:reviewId", c.ReviewHandler.UpdateReview)
		reviews.DELETE("/:reviewId", c.ReviewHandler.DeleteReview)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error"
				health["status"] = "degraded"
			}
		}

		// Check redis (non-critical)
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/glowmarket/backend/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/featured", handler.FeaturedProducts)
			products.GET("/search", handler.SearchProducts)
			products.GET("/:id", handler.GetProduct)
			products.GET("/:id/related", handler.RelatedProducts)
			products.GET("/:id/reviews", handler.ProductReviews)
			products.GET("/:id/rating", handler.ProductRating)
			products.POST("/:id/reviews", handler.CreateReview)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", handler.ListCategories)
			categories.GET("/:slug", handler.GetCategory)
			categories.GET("/:slug/subcategories", handler.GetSubcategories)
		}

		collections := v1.Group("/collections")
		{
			collections.GET("", handler.ListCollections)
			collections.GET("/featured", handler.FeaturedCollections)
			collections.GET("/:slug", handler.GetCollection)
			collections.GET("/:slug/products", handler.CollectionProducts)
		}

		v1.POST("/reviews/:id/helpful", handler.MarkReviewHelpful)
	}

	return router
}

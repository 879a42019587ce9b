package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"product-catalog-api/internal/config"
	"product-catalog-api/internal/middleware"
	"product-catalog-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ProductService services.ProductService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, routerConfig *RouterConfig) {
	productHandler := NewProductHandler(routerConfig.ProductService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "product-catalog-api",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *config.Config) {
	// Request ID and correlation ID
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())

	// CORS
	router.Use(middleware.CORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Request size limit
	router.Use(middleware.RequestSizeLimit(cfg.MaxBodyBytes))

	// Content type validation for write requests
	router.Use(middleware.ContentTypeValidation("application/json"))

	// Rate limiting
	router.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Structured logging
	router.Use(middleware.StructuredLogger())

	// Performance monitoring (log requests over 1 second)
	router.Use(middleware.PerformanceMonitor(0))

	// Audit logging for write operations
	router.Use(middleware.AuditLogger())

	// Store faults reach this layer unhandled and leave as a plain 500
	router.Use(middleware.ErrorHandler())
}

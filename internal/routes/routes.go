package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"netlease/internal/controllers"
	"netlease/internal/pkg/newsapi"
	"netlease/internal/tenants"
	"netlease/internal/web"
)

// SetupRouter initializes all controllers and API routes
func SetupRouter(store *tenants.Store, news *newsapi.Client, log *zap.Logger) *gin.Engine {
	tenantController := controllers.TenantController{Store: store, News: news, Log: log}
	pageController := controllers.PageController{Store: store}

	// Set up Gin router
	router := gin.Default()
	router.SetHTMLTemplate(web.Templates())

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	// Server-rendered directory views
	router.GET("/", pageController.Index)
	router.GET("/tenants/:id", pageController.Show)

	// Group API routes under /api/v1
	api := router.Group("/api/v1")
	{
		api.GET("/categories", tenantController.GetCategories)

		// Tenants group
		ts := api.Group("/tenants")
		{
			ts.GET("", tenantController.GetTenants)
			ts.GET("/:id", tenantController.GetTenant)
			ts.GET("/:id/news", tenantController.GetTenantNews)
		}
	}

	return router
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"netlease/internal/pkg/newsapi"
	"netlease/internal/tenants"
)

type TenantController struct {
	Store *tenants.Store
	News  *newsapi.Client
	Log   *zap.Logger
}

// GetTenants returns the directory filtered by q, category and public.
func (tc *TenantController) GetTenants(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("q")
	category := c.DefaultQuery("category", tenants.CategoryAll)
	publicOnly := c.Query("public") == "true"

	list := tenants.Filter(tc.Store.Tenants(ctx), query, category, publicOnly)

	c.JSON(http.StatusOK, gin.H{
		"tenants": list,
	})
}

// GetTenant returns one profile by id.
func (tc *TenantController) GetTenant(c *gin.Context) {
	t, ok := tc.Store.Find(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tenant": t,
	})
}

// GetTenantNews looks up live articles for a tenant, keyed by its name.
// The news service is an independent collaborator: a failure here is
// scoped to this endpoint and never affects directory reads.
func (tc *TenantController) GetTenantNews(c *gin.Context) {
	ctx := c.Request.Context()

	t, ok := tc.Store.Find(ctx, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		return
	}

	articles, err := tc.News.Search(ctx, t.Name)
	if err != nil {
		if errors.Is(err, newsapi.ErrNoNews) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No news found."})
			return
		}

		tc.Log.Error("news lookup failed", zap.String("tenant", t.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch news."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
	})
}

// GetCategories lists the category filter options.
func (tc *TenantController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": tenants.Categories,
	})
}

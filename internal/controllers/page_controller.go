package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netlease/internal/tenants"
)

// PageController serves the server-rendered directory views.
type PageController struct {
	Store *tenants.Store
}

// Index renders the directory grid, filtered the same way as the API.
func (pc *PageController) Index(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("q")
	category := c.DefaultQuery("category", tenants.CategoryAll)
	publicOnly := c.Query("public") == "true"

	list := tenants.Filter(pc.Store.Tenants(ctx), query, category, publicOnly)

	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"Tenants":    list,
		"Query":      query,
		"Category":   category,
		"PublicOnly": publicOnly,
		"Categories": tenants.Categories,
	})
}

// Show renders one tenant profile.
func (pc *PageController) Show(c *gin.Context) {
	t, ok := pc.Store.Find(c.Request.Context(), c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html.tmpl", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "tenant.html.tmpl", gin.H{
		"Tenant": t,
	})
}

package proxy

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler forwards any request under its route to the upstream records
// API, injecting the bearer key server-side so it never reaches a
// browser. The upstream status and body pass through untouched apart from
// permissive CORS headers.
type Handler struct {
	upstream string
	apiKey   string
	client   *http.Client
	log      *zap.Logger
}

func New(upstream, apiKey string, log *zap.Logger) *Handler {
	return &Handler{
		upstream: strings.TrimRight(upstream, "/"),
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// UseDefaultClient switches to http.DefaultClient so tests can install a
// mock transport.
func (h *Handler) UseDefaultClient() {
	h.client = http.DefaultClient
}

// Router mounts the handler as a catch-all under /api.
func Router(h *Handler) *gin.Engine {
	router := gin.Default()
	router.Any("/api/*path", h.Forward)
	return router
}

// Forward handles one proxied request.
func (h *Handler) Forward(c *gin.Context) {
	setCORS(c)

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	if h.apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Grist API key is not configured."})
		return
	}

	target := h.upstream + c.Param("path")
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data from Grist API", "details": err.Error()})
		return
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Error("proxy upstream call failed", zap.String("target", target), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data from Grist API", "details": err.Error()})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.log.Error("proxy upstream read failed", zap.String("target", target), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data from Grist API", "details": err.Error()})
		return
	}

	c.Data(resp.StatusCode, "application/json", body)
}

func setCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
}

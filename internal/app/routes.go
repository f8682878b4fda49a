package app

import (
	"net/http"
	"time"

	"github.com/cloudgen/core/internal/modules/article"
	"github.com/cloudgen/core/internal/modules/image"
	"github.com/cloudgen/core/internal/modules/render"
	"github.com/cloudgen/core/internal/modules/ui"
	"github.com/cloudgen/core/internal/modules/workflow"
	"github.com/cloudgen/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

var processStart = time.Now()

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "cloudgen-core",
		"version":  "1.0.0",
		"homepage": "https://github.com/cloudgen/core",
		"issues":   "https://github.com/cloudgen/core/issues",
	}

	// Frontend
	ui.NewHandler().RegisterRoutes(r)

	// Shared services
	articleSvc := article.NewService(a.llm, a.logger)
	imageSvc := image.NewService(a.llm, a.cfg.Fetch, a.logger)

	api := r.Group("/api")

	article.NewHandler(articleSvc, a.logger).RegisterRoutes(api)
	image.NewHandler(imageSvc, a.logger).RegisterRoutes(api)
	workflow.NewHandler(workflow.NewStore(), articleSvc, imageSvc, a.logger).RegisterRoutes(api)
	render.NewHandler().RegisterRoutes(api)

	// App info endpoints
	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/health", func(c *gin.Context) {
		uptime := time.Since(processStart)
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"uptime":   uptime.Milliseconds(),
			"humanize": humanizeDuration(uptime),
		})
	})
}

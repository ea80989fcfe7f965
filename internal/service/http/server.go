package http

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/plant-hub/config"
	"github.com/reusedev/plant-hub/internal/modules/logs"
	"github.com/reusedev/plant-hub/internal/modules/metrics"
	"github.com/reusedev/plant-hub/internal/service/http/handler"
	"github.com/reusedev/plant-hub/internal/service/http/middleware"
)

func Serve(port string) {
	e := NewEngine(config.GConfig)
	logs.Logger.Info().Str("addr", port).Msg("http server started")
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func NewEngine(cfg *config.Config) *gin.Engine {
	e := gin.New()
	e.MaxMultipartMemory = int64(cfg.MaxUploadMB) << 20
	initRouter(e, cfg)
	return e
}

func initRouter(e *gin.Engine, cfg *config.Config) {
	e.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())
	e.Static("/static", cfg.StaticDir)
	e.GET("/metrics", gin.WrapH(metrics.Handler()))
	initPages(e, cfg.TemplateDir)

	api := e.Group("/api")
	{
		api.POST("/analyze", handler.Analyze)
		api.POST("/identify", handler.Identify)
		api.POST("/ask", handler.Ask)
	}
	h := api.Group("/history")
	{
		h.GET("", handler.HistoryList)
		h.DELETE("/clear", handler.HistoryClear)
		h.DELETE("/:id", handler.HistoryDelete)
	}
}

// initPages registers a route for every page template found in dir.
func initPages(e *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	pattern := filepath.Join(dir, "*.html")
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		logs.Logger.Warn().Str("template_dir", dir).Msg("no page templates found")
		return
	}
	e.LoadHTMLGlob(pattern)
	found := make(map[string]bool, len(matches))
	for _, m := range matches {
		found[filepath.Base(m)] = true
	}
	for route, tmpl := range handler.Pages {
		if found[tmpl] {
			e.GET(route, handler.Page(tmpl))
		}
	}
}

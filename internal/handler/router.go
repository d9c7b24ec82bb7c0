package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trolley-inventory/internal/handler/api"
	"trolley-inventory/internal/handler/middleware"
	"trolley-inventory/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	batchHandler *api.BatchHandler,
	drawerStatusHandler *api.DrawerStatusHandler,
	restockHistoryHandler *api.RestockHistoryHandler,
	referenceHandler *api.ReferenceHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, batchHandler, drawerStatusHandler, restockHistoryHandler, referenceHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	batchHandler *api.BatchHandler,
	drawerStatusHandler *api.DrawerStatusHandler,
	restockHistoryHandler *api.RestockHistoryHandler,
	referenceHandler *api.ReferenceHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		items := apiGroup.Group("/items")
		{
			addRoutes(items, []route{
				{Method: http.MethodPost, Path: "", Handler: batchHandler.Register},
				{Method: http.MethodGet, Path: "", Handler: batchHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: batchHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: batchHandler.UpdateStatus},
			})
		}

		drawerStatus := apiGroup.Group("/drawer-status")
		{
			addRoutes(drawerStatus, []route{
				{Method: http.MethodPost, Path: "/load", Handler: drawerStatusHandler.RegisterLoad},
				{Method: http.MethodPost, Path: "/loads/:id/deplete", Handler: drawerStatusHandler.DepleteLoad},
				{Method: http.MethodGet, Path: "/drawer/:drawerId", Handler: drawerStatusHandler.GetByDrawer},
				{Method: http.MethodGet, Path: "/:id", Handler: drawerStatusHandler.Get},
				{Method: http.MethodGet, Path: "/:id/loads", Handler: drawerStatusHandler.ListLoads},
			})
		}

		restockHistory := apiGroup.Group("/restock-history")
		{
			addRoutes(restockHistory, []route{
				{Method: http.MethodPost, Path: "", Handler: restockHistoryHandler.Record},
				{Method: http.MethodGet, Path: "", Handler: restockHistoryHandler.List},
				{Method: http.MethodGet, Path: "/warnings", Handler: restockHistoryHandler.ListWarnings},
				{Method: http.MethodGet, Path: "/leaderboard", Handler: restockHistoryHandler.Leaderboard},
				{Method: http.MethodGet, Path: "/employee/:id", Handler: restockHistoryHandler.ListByEmployee},
				{Method: http.MethodGet, Path: "/performance/:id", Handler: restockHistoryHandler.EmployeePerformance},
				{Method: http.MethodGet, Path: "/:id", Handler: restockHistoryHandler.Get},
			})
		}

		drawers := apiGroup.Group("/drawers")
		{
			addRoutes(drawers, []route{
				{Method: http.MethodPost, Path: "", Handler: referenceHandler.CreateDrawer},
				{Method: http.MethodGet, Path: "", Handler: referenceHandler.ListDrawers},
				{Method: http.MethodGet, Path: "/:id", Handler: referenceHandler.GetDrawer},
			})
		}

		employees := apiGroup.Group("/employees")
		{
			addRoutes(employees, []route{
				{Method: http.MethodPost, Path: "", Handler: referenceHandler.CreateEmployee},
				{Method: http.MethodGet, Path: "", Handler: referenceHandler.ListEmployees},
				{Method: http.MethodGet, Path: "/:id", Handler: referenceHandler.GetEmployee},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

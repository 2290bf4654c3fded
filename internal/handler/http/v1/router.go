package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shenikar/help_hualien/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shenikar/help_hualien/docs"
)

// NewRouter собирает gin-движок: общие middleware, CORS, Swagger и маршруты /api/v1
func NewRouter(h *Handler, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), RequestLoggerMiddleware(h.logger))
	router.Use(cors.New(corsConfig(cfg)))

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(func(c *gin.Context) {
		respondFail(c, http.StatusNotFound, "route not found")
	})

	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без токена
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(BearerAuthMiddleware(h.verifier, h.logger))

	// Заявки о помощи
	reports := protected.Group("/report")
	{
		reports.GET("", h.listReports)
		reports.POST("", h.createReport)
		reports.GET("/my", h.listMyReports)
		reports.PUT("/:reportId", h.updateReport)
	}

	// Волонтеры в пути
	onGoing := protected.Group("/ongoing")
	{
		onGoing.POST("", h.createOnGoing)
		onGoing.PATCH("/:id/status", h.updateOnGoingStatus)
		onGoing.GET("/report/:reportId", h.listOnGoingByReport)
		onGoing.GET("/my", h.listMyOnGoing)
		onGoing.DELETE("/:id", h.removeOnGoing)
	}

	// Профиль текущего пользователя
	users := protected.Group("/users")
	{
		users.POST("", h.upsertUser)
		users.GET("", h.getUser)
		users.DELETE("", h.deleteUser)
	}
}

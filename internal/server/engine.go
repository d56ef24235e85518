package server

import (
	"log/slog"

	"github.com/eventdesk/event-manager/internal/middleware"
	"github.com/eventdesk/event-manager/pkg/calendar"
	"github.com/eventdesk/event-manager/pkg/event"
	"github.com/eventdesk/event-manager/pkg/health"
	"github.com/eventdesk/event-manager/pkg/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
	sloggin "github.com/samber/slog-gin"
)

func GetEngine(logger *slog.Logger, basePath string, userHandler user.Handler, eventHandler event.Handler, calendarHandler calendar.Handler, authenticationMiddleware middleware.AuthenticationMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sloggin.New(logger))
	r.Use(middleware.CorrelationID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	redoc(router, basePath)

	router.GET("/health", health.Health)

	user.Routes(router, authenticationMiddleware, userHandler)
	event.Routes(router, authenticationMiddleware.TokenAuthentication, eventHandler)
	calendar.Routes(router, authenticationMiddleware.TokenAuthentication, calendarHandler)

	return r
}

func redoc(router *gin.RouterGroup, basePath string) {
	router.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	redocOpts := redocMiddleware.RedocOpts{
		BasePath: basePath,
		SpecURL:  "./swagger.yaml",
	}
	router.GET("/docs", func(c *gin.Context) {
		redocHandler := redocMiddleware.Redoc(redocOpts, nil)
		redocHandler.ServeHTTP(c.Writer, c.Request)
	})
}

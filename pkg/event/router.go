package event

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticator)

	tokenAuthenticationRouter.GET("/events", handler.List)
	tokenAuthenticationRouter.GET("/events/export", handler.Export)
	tokenAuthenticationRouter.GET("/events/:id", handler.FindById)
	tokenAuthenticationRouter.POST("/events", handler.Create)
	tokenAuthenticationRouter.PUT("/events/:id", handler.Update)
	tokenAuthenticationRouter.DELETE("/events/:id", handler.Delete)
}

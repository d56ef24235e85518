package calendar

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticator)

	tokenAuthenticationRouter.GET("/calendar/:year/:month", handler.Month)
}

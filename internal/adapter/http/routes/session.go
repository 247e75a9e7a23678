package routes

import (
	"fieldservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathUsers    = "/users"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	rg.POST(PathSessions, sessionHandler.Login)
}

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.RegisterUser)
		users.GET("", userHandler.ListUsers)
	}
}

package auth

import (
	"github.com/gin-gonic/gin"

	"zenith-planner/internal/task/repository"
	"zenith-planner/pkg/googleauth"
	"zenith-planner/pkg/log"
)

// Handler is the public interface for the Google login delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l      log.Logger
	google *googleauth.Client
	users  repository.UserRepository
	secret string
}

// New creates a new auth handler.
func New(l log.Logger, google *googleauth.Client, users repository.UserRepository, secret string) *handler {
	return &handler{
		l:      l,
		google: google,
		users:  users,
		secret: secret,
	}
}

// RegisterRoutes maps the login endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	auth := rg.Group("/auth")
	{
		auth.GET("/google/login", h.Login)
		auth.GET("/google/callback", h.Callback)
		auth.POST("/logout", h.Logout)
	}
}

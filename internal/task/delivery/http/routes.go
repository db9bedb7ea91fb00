package http

import (
	"github.com/gin-gonic/gin"

	"zenith-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated scope and are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Scope(), mw.RateLimit())
	{
		tasks.POST("", h.Add)
		tasks.GET("", h.List)
		tasks.GET("/countdown", h.Countdown)
		tasks.GET("/summary", h.Summary)
		tasks.POST("/:id/complete", h.Complete)
		tasks.DELETE("/:id", h.Delete)
	}
}

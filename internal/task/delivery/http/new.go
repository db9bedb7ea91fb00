package http

import (
	"github.com/gin-gonic/gin"

	"zenith-planner/internal/task"
	"zenith-planner/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
	Countdown(c *gin.Context)
	Complete(c *gin.Context)
	Delete(c *gin.Context)
	Summary(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

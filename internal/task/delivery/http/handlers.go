package http

import (
	"github.com/gin-gonic/gin"

	"zenith-planner/internal/middleware"
	"zenith-planner/pkg/response"
)

// Add godoc
// @Summary     Add a task from natural language
// @Description Interprets a free-text description, resolves its due time and recurrence, and stores the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Raw task text"
// @Success     200 {object} addResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddTaskFromText(ctx, sc, req.toInput())
	if err != nil {
		if msg, ok := h.friendlyMessage(err); ok {
			response.OK(c, statusResp{Message: msg})
			return
		}
		h.l.Errorf(ctx, "uc.AddTaskFromText: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newAddResp(output))
}

// List godoc
// @Summary     List prioritized tasks
// @Description Returns pending tasks ordered by urgency, undated tasks last. Events are listed separately via the countdown endpoint.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.ListPrioritized(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPrioritized: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Countdown godoc
// @Summary     List upcoming events
// @Description Returns pending dated events (birthdays, meetings, trips) ordered by time remaining.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/countdown [GET]
func (h *handler) Countdown(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.CountdownEvents(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.CountdownEvents: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task complete. Recurring tasks are rescheduled to their next occurrence instead.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.MarkComplete(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.MarkComplete: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, statusResp{Message: output.Message})
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task owned by the authenticated user.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DeleteTask(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, statusResp{Message: output.Message})
}

// Summary godoc
// @Summary     Daily productivity report
// @Description Returns the daily summary: completion metrics, overdue and urgent buckets, and a motivational note.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.DailySummary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.DailySummary: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxty9378/paneldoirp-sub002/internal/controller"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/maxty9378/paneldoirp-sub002/internal/middleware"
	"github.com/maxty9378/paneldoirp-sub002/internal/service"
)

type EventController struct {
	eventService service.EventService
}

func NewEventController(eventService service.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// ListEvents godoc
// @Summary List the events visible to the caller
// @Description Statistics are included only for roles allowed to see them.
// @Tags User - Events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.EventWithStats
// @Failure 503 {object} dto.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListForUser(ctx.Request.Context(), middleware.UserIDFrom(ctx), middleware.RoleFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get one event
// @Tags User - Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (uuid)"
// @Success 200 {object} model.EventWithStats
// @Failure 403 {object} dto.ErrorResponse "Not visible to the caller"
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	eventID, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	event, err := c.eventService.GetEvent(ctx.Request.Context(), eventID, middleware.UserIDFrom(ctx), middleware.RoleFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags User - Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EventCreateRequest true "Event"
// @Success 201 {object} model.EventWithStats
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.EventCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}
	event, err := c.eventService.CreateEvent(ctx.Request.Context(), middleware.UserIDFrom(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

// AddParticipant godoc
// @Summary Add a participant to an event
// @Description Adding someone who already participates is a no-op.
// @Tags User - Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (uuid)"
// @Param request body dto.AddParticipantRequest true "Participant"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/participants [post]
func (c *EventController) AddParticipant(ctx *gin.Context) {
	eventID, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AddParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}
	if err := c.eventService.AddParticipant(ctx.Request.Context(), eventID, req.UserID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Participant added"})
}

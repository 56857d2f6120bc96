package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxty9378/paneldoirp-sub002/internal/controller"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/maxty9378/paneldoirp-sub002/internal/middleware"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	"github.com/maxty9378/paneldoirp-sub002/internal/repository"
	"github.com/maxty9378/paneldoirp-sub002/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	builderService service.TestBuilderService
	eventService   service.EventService
}

func NewAdminTestController(builderService service.TestBuilderService, eventService service.EventService) *AdminTestController {
	return &AdminTestController{builderService: builderService, eventService: eventService}
}

// CreateTest godoc
// @Summary (Admin) Create a test
// @Description Creates a test with its questions and answer options. Points are normalized to add up to 100.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestSaveDTO true "Test definition"
// @Success 201 {object} dto.TestDetailResponse "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid definition, every violated rule is listed in details"
// @Failure 403 {object} dto.ErrorResponse "Missing capability"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable, retryable"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}

	testResp, err := c.builderService.CreateTest(ctx.Request.Context(), middleware.UserIDFrom(ctx), req)
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("Admin CreateTest: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// SaveTest godoc
// @Summary (Admin) Replace a test definition
// @Description Saves the whole definition in one transaction. Questions and options sent with an id are updated, the others inserted, and the ones not sent are removed.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test ID (uuid)"
// @Param test_data body dto.TestSaveDTO true "Test definition"
// @Success 200 {object} dto.TestDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /admin/tests/{id} [put]
func (c *AdminTestController) SaveTest(ctx *gin.Context) {
	id, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}

	testResp, err := c.builderService.SaveTest(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// ValidateTest godoc
// @Summary (Admin) Validate a test definition without saving it
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestSaveDTO true "Test definition"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/tests/validate [post]
func (c *AdminTestController) ValidateTest(ctx *gin.Context) {
	var req dto.TestSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}
	if err := c.builderService.ValidateTest(req); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test definition is valid"})
}

// GetTest godoc
// @Summary (Admin) Get a test with correct answers
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test ID (uuid)"
// @Success 200 {object} dto.TestDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/tests/{id} [get]
func (c *AdminTestController) GetTest(ctx *gin.Context) {
	id, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	testResp, err := c.builderService.GetTest(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// ListTests godoc
// @Summary (Admin) List tests
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param status query string false "draft, active or inactive"
// @Param type query string false "entry, final or annual"
// @Param event_type_id query string false "Event type (uuid)"
// @Success 200 {array} dto.TestSummaryResponse
// @Router /admin/tests [get]
func (c *AdminTestController) ListTests(ctx *gin.Context) {
	eventTypeID, ok := controller.OptionalUUIDQuery(ctx, "event_type_id")
	if !ok {
		return
	}
	filter := repository.TestFilter{
		Status:      model.TestStatus(ctx.Query("status")),
		Type:        model.TestType(ctx.Query("type")),
		EventTypeID: eventTypeID,
	}
	tests, err := c.builderService.ListTests(ctx.Request.Context(), filter)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// SetStatus godoc
// @Summary (Admin) Change a test's status
// @Description Activating a test validates its definition first.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test ID (uuid)"
// @Param status body dto.TestStatusDTO true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/tests/{id}/status [patch]
func (c *AdminTestController) SetStatus(ctx *gin.Context) {
	id, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestStatusDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}
	if err := c.builderService.SetStatus(ctx.Request.Context(), id, model.TestStatus(req.Status)); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Status updated"})
}

// DeleteTest godoc
// @Summary (Admin) Delete a test
// @Description Hard delete of the test with its questions and answer options. Attempts are kept.
// @Tags Admin - Tests
// @Security BearerAuth
// @Param id path string true "Test ID (uuid)"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/tests/{id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	id, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.builderService.DeleteTest(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// InvalidateEventCache godoc
// @Summary (Admin) Drop cached event listings
// @Description Call after changing events or user profiles outside of this API.
// @Tags Admin - Events
// @Security BearerAuth
// @Success 204
// @Router /admin/cache/events/invalidate [post]
func (c *AdminTestController) InvalidateEventCache(ctx *gin.Context) {
	c.eventService.Invalidate()
	ctx.Status(http.StatusNoContent)
}

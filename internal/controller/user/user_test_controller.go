package user

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

type UserTestController struct {
	attemptService service.AttemptService
}

func NewUserTestController(attemptService service.AttemptService) *UserTestController {
	return &UserTestController{attemptService: attemptService}
}

// GetTestForTaking godoc
// @Summary Get an active test for taking
// @Description Returns the questions without correctness flags. Options of sequence questions come shuffled.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test ID (uuid)"
// @Success 200 {object} dto.TakingTestResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found or not active"
// @Router /tests/{id} [get]
func (c *UserTestController) GetTestForTaking(ctx *gin.Context) {
	testID, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	testResp, err := c.attemptService.GetTestForTaking(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// StartAttempt godoc
// @Summary Start or resume an attempt
// @Description Resumes the open attempt for the same test and event if there is one. Refuses passed entry and final tests, and annual tests taken less than three months after the event.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Test ID (uuid)"
// @Param request body dto.StartAttemptRequest true "Event the attempt belongs to"
// @Success 201 {object} dto.AttemptResponse "New attempt"
// @Success 200 {object} dto.AttemptResponse "Resumed attempt"
// @Failure 409 {object} dto.ErrorResponse "Test already passed"
// @Failure 423 {object} dto.ErrorResponse "Annual test not yet available"
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{id}/attempts [post]
func (c *UserTestController) StartAttempt(ctx *gin.Context) {
	testID, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}

	userID := middleware.UserIDFrom(ctx)
	attempt, err := c.attemptService.StartAttempt(ctx.Request.Context(), userID, testID, req.EventID)
	if err != nil {
		log.Info().Err(err).Str("test_id", testID.String()).Str("user_id", userID.String()).Msg("StartAttempt refused")
		controller.RespondError(ctx, err)
		return
	}
	status := http.StatusCreated
	if attempt.Resumed {
		status = http.StatusOK
	}
	ctx.JSON(status, attempt)
}

// SubmitAnswers godoc
// @Summary Submit answers and finish an attempt
// @Description Stores the answers, scores them and closes the attempt as completed or failed.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Param request body dto.SubmitAnswersRequest true "Answers"
// @Success 200 {object} dto.AttemptResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Attempt belongs to another user"
// @Failure 409 {object} dto.ErrorResponse "Attempt already finished"
// @Router /attempts/{id}/submit [post]
func (c *UserTestController) SubmitAnswers(ctx *gin.Context) {
	attemptID, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}

	result, err := c.attemptService.SubmitAnswers(ctx.Request.Context(), attemptID, middleware.UserIDFrom(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AbandonAttempt godoc
// @Summary Abandon an open attempt
// @Description Closes the attempt as failed without a score.
// @Tags User - Attempts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Success 200 {object} dto.AttemptResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /attempts/{id}/abandon [post]
func (c *UserTestController) AbandonAttempt(ctx *gin.Context) {
	attemptID, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.attemptService.AbandonAttempt(ctx.Request.Context(), attemptID, middleware.UserIDFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// GetResults godoc
// @Summary Get the results of an attempt
// @Description Owners see their own results. Reviewers with the right capability see anyone's.
// @Tags User - Attempts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Success 200 {object} dto.AttemptResultResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{id}/results [get]
func (c *UserTestController) GetResults(ctx *gin.Context) {
	attemptID, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	result, err := c.attemptService.LoadResults(ctx.Request.Context(), attemptID, middleware.UserIDFrom(ctx), middleware.CapabilitiesFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListAttempts godoc
// @Summary List attempts
// @Description Without the view-all-results capability only the caller's attempts are returned and user_id is ignored.
// @Tags User - Attempts
// @Produce json
// @Security BearerAuth
// @Param test_id query string false "Test (uuid)"
// @Param event_id query string false "Event (uuid)"
// @Param user_id query string false "User (uuid)"
// @Param status query string false "in_progress, completed or failed"
// @Success 200 {array} dto.AttemptResponse
// @Router /attempts [get]
func (c *UserTestController) ListAttempts(ctx *gin.Context) {
	testID, ok := controller.OptionalUUIDQuery(ctx, "test_id")
	if !ok {
		return
	}
	eventID, ok := controller.OptionalUUIDQuery(ctx, "event_id")
	if !ok {
		return
	}
	userID, ok := controller.OptionalUUIDQuery(ctx, "user_id")
	if !ok {
		return
	}
	if !middleware.CapabilitiesFrom(ctx).CanViewAllResults {
		self := middleware.UserIDFrom(ctx)
		userID = &self
	}

	attempts, err := c.attemptService.ListAttempts(ctx.Request.Context(), repository.AttemptFilter{
		TestID:  testID,
		EventID: eventID,
		UserID:  userID,
		Status:  model.AttemptStatus(ctx.Query("status")),
	})
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GradeAnswer godoc
// @Summary Grade a free text answer
// @Description Marks the answer correct or not and recomputes the attempt score.
// @Tags Reviewer - Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID (uuid)"
// @Param question_id path string true "Question ID (uuid)"
// @Param request body dto.GradeAnswerRequest true "Verdict"
// @Success 200 {object} dto.AttemptResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{id}/answers/{question_id}/grade [post]
func (c *UserTestController) GradeAnswer(ctx *gin.Context) {
	attemptID, ok := controller.UUIDParam(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := controller.UUIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.GradeAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindFailed(ctx, err)
		return
	}

	result, err := c.attemptService.GradeTextAnswer(ctx.Request.Context(), attemptID, questionID, *req.IsCorrect)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().
		Str("attempt_id", attemptID.String()).
		Str("question_id", questionID.String()).
		Str("grader_id", middleware.UserIDFrom(ctx).String()).
		Bool("correct", *req.IsCorrect).
		Msg("Text answer graded")
	ctx.JSON(http.StatusOK, result)
}

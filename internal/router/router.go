// Package router builds the gin engine and mounts every portal endpoint on it.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/maxty9378/paneldoirp-sub002/config"
	"github.com/maxty9378/paneldoirp-sub002/internal/access"
	adminctrl "github.com/maxty9378/paneldoirp-sub002/internal/controller/admin"
	userctrl "github.com/maxty9378/paneldoirp-sub002/internal/controller/user"
	"github.com/maxty9378/paneldoirp-sub002/internal/metrics"
	"github.com/maxty9378/paneldoirp-sub002/internal/middleware"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers groups the HTTP handlers mounted by RegisterRoutes.
type Controllers struct {
	AdminTests *adminctrl.AdminTestController
	UserTests  *userctrl.UserTestController
	Events     *userctrl.EventController
}

func NewControllers(
	adminTests *adminctrl.AdminTestController,
	userTests *userctrl.UserTestController,
	events *userctrl.EventController,
) *Controllers {
	return &Controllers{AdminTests: adminTests, UserTests: userTests, Events: events}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: len(origins) != 1 || origins[0] != "*",
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func canManageTests(c access.Capabilities) bool  { return c.CanManageTests }
func canDeleteTests(c access.Capabilities) bool  { return c.CanDeleteTests }
func canTakeTests(c access.Capabilities) bool    { return c.CanTakeTests }
func canGradeAnswers(c access.Capabilities) bool { return c.CanGradeAnswers }
func canCreateEvents(c access.Capabilities) bool { return c.CanCreateEvents }

// RegisterRoutes mounts the API under /api/v1 plus the /healthz and /metrics probes.
func RegisterRoutes(r *gin.Engine, auth *middleware.Authenticator, m *metrics.Metrics, ctrl *Controllers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api/v1", auth.RequireAuth())

	// Admin Routes (prefixed with /api/v1/admin)
	adminGroup := api.Group("/admin", middleware.RequireCapability("manage_tests", canManageTests))
	{
		tests := adminGroup.Group("/tests")
		tests.POST("", ctrl.AdminTests.CreateTest)
		tests.GET("", ctrl.AdminTests.ListTests)
		tests.POST("/validate", ctrl.AdminTests.ValidateTest)
		tests.GET("/:id", ctrl.AdminTests.GetTest)
		tests.PUT("/:id", ctrl.AdminTests.SaveTest)
		tests.PATCH("/:id/status", ctrl.AdminTests.SetStatus)
		tests.DELETE("/:id", middleware.RequireCapability("delete_tests", canDeleteTests), ctrl.AdminTests.DeleteTest)

		adminGroup.POST("/cache/events/invalidate", ctrl.AdminTests.InvalidateEventCache)
	}

	// User Routes (prefixed with /api/v1)
	{
		api.GET("/tests/:id", ctrl.UserTests.GetTestForTaking)
		api.POST("/tests/:id/attempts", middleware.RequireCapability("take_tests", canTakeTests), ctrl.UserTests.StartAttempt)

		api.GET("/attempts", ctrl.UserTests.ListAttempts)
		api.POST("/attempts/:id/submit", ctrl.UserTests.SubmitAnswers)
		api.POST("/attempts/:id/abandon", ctrl.UserTests.AbandonAttempt)
		api.GET("/attempts/:id/results", ctrl.UserTests.GetResults)
		api.POST("/attempts/:id/answers/:question_id/grade",
			middleware.RequireCapability("grade_answers", canGradeAnswers), ctrl.UserTests.GradeAnswer)

		api.GET("/events", ctrl.Events.ListEvents)
		api.POST("/events", middleware.RequireCapability("create_events", canCreateEvents), ctrl.Events.CreateEvent)
		api.GET("/events/:id", ctrl.Events.GetEvent)
		api.POST("/events/:id/participants",
			middleware.RequireCapability("create_events", canCreateEvents), ctrl.Events.AddParticipant)
	}
}

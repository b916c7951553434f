package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vidyarth/vidyarth-backend/internal/app/models/dto"
	"github.com/vidyarth/vidyarth-backend/internal/app/services"
	"github.com/vidyarth/vidyarth-backend/internal/middleware"
)

// DashboardController serves the per-role dashboard view-models. The
// role gate runs in middleware, so each handler only identifies the
// caller and delegates to the aggregator.
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Student serves the student dashboard for the authenticated student.
func (c *DashboardController) Student(ctx *gin.Context) {
	studentID := ctx.GetInt64(middleware.ContextUserID)

	dashboard, err := c.dashboardService.StudentDashboard(ctx.Request.Context(), studentID)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to build student dashboard")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// Faculty serves the faculty dashboard.
func (c *DashboardController) Faculty(ctx *gin.Context) {
	facultyID := ctx.GetInt64(middleware.ContextUserID)

	dashboard, err := c.dashboardService.FacultyDashboard(ctx.Request.Context(), facultyID)
	if err != nil {
		c.logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Failed to build faculty dashboard")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// Admin serves the admin dashboard.
func (c *DashboardController) Admin(ctx *gin.Context) {
	dashboard, err := c.dashboardService.AdminDashboard(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build admin dashboard")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vidyarth/vidyarth-backend/internal/app/controllers"
	"github.com/vidyarth/vidyarth-backend/internal/app/models"
	"github.com/vidyarth/vidyarth-backend/internal/app/models/dto"
	"github.com/vidyarth/vidyarth-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/me", authController.Me)

		// Each dashboard is gated on its exact role; there is no
		// partial view for a mismatched role.
		dashboard := authenticated.Group("/dashboard")
		{
			dashboard.GET("/student",
				authMiddleware.RoleRequired(models.RoleStudent), dashboardController.Student)
			dashboard.GET("/faculty",
				authMiddleware.RoleRequired(models.RoleFaculty), dashboardController.Faculty)
			dashboard.GET("/admin",
				authMiddleware.RoleRequired(models.RoleAdmin), dashboardController.Admin)
		}

		uploads := authenticated.Group("/uploads")
		uploads.Use(authMiddleware.RoleRequired(models.RoleFaculty))
		{
			uploads.POST("/student-data", uploadController.StudentData)
			uploads.POST("/marks/:examId", uploadController.Marks)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}

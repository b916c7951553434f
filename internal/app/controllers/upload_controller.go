package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidyarth/vidyarth-backend/internal/app/models/dto"
)

// UploadController holds the faculty upload endpoints. Grade entry and
// student-data upload are placeholders pending the upload workflow.
type UploadController struct{}

// NewUploadController creates a new UploadController
func NewUploadController() *UploadController {
	return &UploadController{}
}

// StudentData accepts student record uploads. Not implemented yet.
func (c *UploadController) StudentData(ctx *gin.Context) {
	ctx.JSON(http.StatusNotImplemented, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Student data upload is not implemented").
			WithSeverity(dto.ErrorSeverityInfo)))
}

// Marks accepts marks for an exam. Not implemented yet.
func (c *UploadController) Marks(ctx *gin.Context) {
	ctx.JSON(http.StatusNotImplemented, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Marks upload is not implemented for exam "+ctx.Param("examId")).
			WithSeverity(dto.ErrorSeverityInfo)))
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/middleware"
)

// UploadController handles PDF upload endpoints
type UploadController struct {
	uploadService *services.UploadService
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService *services.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// Upload stores an applicant PDF
// @Summary Upload PDF
// @Description Validates the file is a well-formed PDF and records its page count
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "Upload stored"
// @Failure 400 {object} dto.ErrorResponse "Not a valid PDF"
// @Router /uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		bindError(ctx, err)
		return
	}

	upload, err := c.uploadService.Store(ctx, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.UploadResponse{
			ID:        upload.ID,
			FileName:  upload.FileName,
			PageCount: upload.PageCount,
			CreatedAt: upload.CreatedAt,
		},
		Timestamp: time.Now(),
	})
}

// Download serves a stored PDF
// @Summary Download PDF
// @Tags uploads
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Upload ID" Format(uuid)
// @Success 200 {file} file "PDF file"
// @Failure 404 {object} dto.ErrorResponse "Upload not found"
// @Router /uploads/{id} [get]
func (c *UploadController) Download(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	upload, err := c.uploadService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+upload.FileName+`"`)
	ctx.Header("Content-Type", "application/pdf")
	ctx.File(c.uploadService.FilePath(upload))
}

// Delete removes an upload and its stored file
// @Summary Delete upload
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Upload ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Upload deleted"
// @Failure 404 {object} dto.ErrorResponse "Upload not found"
// @Router /uploads/{id} [delete]
func (c *UploadController) Delete(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.uploadService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Upload deleted"},
		Timestamp: time.Now(),
	})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/middleware"
)

// DocumentController handles document review endpoints
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// Get retrieves the document set of an applicant
// @Summary Get document checklist
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.DocumentSet} "Documents retrieved"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/documents [get]
func (c *DocumentController) Get(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	set, err := c.documentService.GetForApplicant(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      set,
		Timestamp: time.Now(),
	})
}

// Update writes document verdicts and possibly advances the applicant
// @Summary Update document checklist
// @Description Writes the submitted verdicts. When every required document is marked existing while the applicant is still in the documents stage, the applicant advances to course analysis in the same transaction.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Param request body dto.UpdateDocumentsRequest true "Slot verdicts"
// @Success 200 {object} dto.APIResponse{data=dto.DocumentReviewResponse} "Documents updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid document status"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/documents [put]
func (c *DocumentController) Update(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	reviewerID, ok := middleware.AccountID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateDocumentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	set, status, err := c.documentService.Update(ctx, id, req, reviewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.DocumentReviewResponse{
			Documents:    *set,
			ReviewStatus: status,
		},
		Timestamp: time.Now(),
	})
}

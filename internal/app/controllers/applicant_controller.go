package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/middleware"
	"github.com/lvogel/admithub/internal/pkg/helpers"
)

// ApplicantController handles applicant review endpoints
type ApplicantController struct {
	applicantService *services.ApplicantService
	exportService    *services.ExportService
}

// NewApplicantController creates a new ApplicantController
func NewApplicantController(applicantService *services.ApplicantService, exportService *services.ExportService) *ApplicantController {
	return &ApplicantController{
		applicantService: applicantService,
		exportService:    exportService,
	}
}

// List retrieves a filtered, paginated applicant listing
// @Summary List applicants
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" minimum(1)
// @Param pageSize query int false "Page size" minimum(1) maximum(100)
// @Param reviewStatus query string false "Filter by review status"
// @Param masterTrack query string false "Filter by master track"
// @Param search query string false "Search in name and applicant number"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantListResponse} "Applicants retrieved"
// @Router /applicants [get]
func (c *ApplicantController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePagination(ctx.Query("page"), ctx.Query("pageSize"))
	filter := repositories.ApplicantFilter{
		ReviewStatus: models.ReviewStatus(ctx.Query("reviewStatus")),
		MasterTrack:  models.MasterTrack(ctx.Query("masterTrack")),
		Search:       ctx.Query("search"),
	}

	applicants, total, err := c.applicantService.List(ctx, filter, uint64(pageSize), helpers.Offset(page, pageSize))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ApplicantListItem, 0, len(applicants))
	for _, applicant := range applicants {
		items = append(items, dto.ApplicantListItem{
			ID:              applicant.ID,
			ApplicantNumber: applicant.ApplicantNumber,
			FirstName:       applicant.FirstName,
			LastName:        applicant.LastName,
			MasterTrack:     applicant.MasterTrack,
			ReviewStatus:    applicant.ReviewStatus,
			CreatedAt:       applicant.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ApplicantListResponse{
			Applicants: items,
			Pagination: dto.PaginationInfo{
				Page:       page,
				PageSize:   pageSize,
				TotalItems: total,
			},
		},
		Timestamp: time.Now(),
	})
}

// Get retrieves the full applicant aggregate
// @Summary Get applicant details
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantDetailResponse} "Applicant retrieved"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id} [get]
func (c *ApplicantController) Get(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.applicantService.GetDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// UpdateReviewStatus moves an applicant through the pipeline
// @Summary Update review status
// @Description Stages only move forward; rejection is reachable from any non-terminal stage
// @Tags applicants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Param request body dto.UpdateReviewStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantListItem} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid transition"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/review-status [put]
func (c *ApplicantController) UpdateReviewStatus(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateReviewStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	applicant, err := c.applicantService.UpdateReviewStatus(ctx, id, req.ReviewStatus)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ApplicantListItem{
			ID:              applicant.ID,
			ApplicantNumber: applicant.ApplicantNumber,
			FirstName:       applicant.FirstName,
			LastName:        applicant.LastName,
			MasterTrack:     applicant.MasterTrack,
			ReviewStatus:    applicant.ReviewStatus,
			CreatedAt:       applicant.CreatedAt,
		},
		Timestamp: time.Now(),
	})
}

// UpdateDegree corrects the degree metadata of an applicant
// @Summary Update degree data
// @Description Replaces the degree fields and stamps the reviewing account
// @Tags applicants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Param request body dto.DegreeRequest true "Degree data"
// @Success 200 {object} dto.APIResponse{data=models.BachelorDegree} "Degree updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid degree data"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/degree [put]
func (c *ApplicantController) UpdateDegree(ctx *gin.Context) {
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

	var req dto.DegreeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	degree, err := c.applicantService.UpdateDegree(ctx, id, req, reviewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      degree,
		Timestamp: time.Now(),
	})
}

// Delete removes an applicant and all owned records
// @Summary Delete applicant
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Applicant deleted"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id} [delete]
func (c *ApplicantController) Delete(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicantService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Applicant deleted"},
		Timestamp: time.Now(),
	})
}

// Stats aggregates pipeline counts
// @Summary Pipeline statistics
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse} "Statistics retrieved"
// @Router /applicants/stats [get]
func (c *ApplicantController) Stats(ctx *gin.Context) {
	stats, err := c.applicantService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// Export retrieves the print-oriented applicant report
// @Summary Export applicant report
// @Description Returns courses bucketed by subject area plus the credit aggregate
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantExportResponse} "Report assembled"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/export [get]
func (c *ApplicantController) Export(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	report, err := c.exportService.ExportApplicant(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ExportCSV streams the results CSV of all fully reviewed applicants
// @Summary Export results CSV
// @Tags applicants
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Router /applicants/export [get]
func (c *ApplicantController) ExportCSV(ctx *gin.Context) {
	filename := fmt.Sprintf("admissions-results-%s.csv", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := c.exportService.WriteResultsCSV(ctx, ctx.Writer); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
}

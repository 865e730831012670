package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/middleware"
)

// SkillController handles personal skill review endpoints
type SkillController struct {
	skillService *services.SkillService
}

// NewSkillController creates a new SkillController
func NewSkillController(skillService *services.SkillService) *SkillController {
	return &SkillController{skillService: skillService}
}

// List retrieves the skills of an applicant
// @Summary List personal skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.PersonalSkill} "Skills retrieved"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/skills [get]
func (c *SkillController) List(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	skills, err := c.skillService.ListForApplicant(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skills,
		Timestamp: time.Now(),
	})
}

// Replace rewrites the full skill set of an applicant
// @Summary Replace personal skills
// @Description Rows carrying an id keep their identity; stored rows absent from the submission are removed
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Param request body []dto.SkillUpsertRequest true "Skill set"
// @Success 200 {object} dto.APIResponse{data=[]models.PersonalSkill} "Skills stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid skill data"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/skills [put]
func (c *SkillController) Replace(ctx *gin.Context) {
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

	var req []dto.SkillUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	skills, err := c.skillService.Replace(ctx, id, req, reviewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skills,
		Timestamp: time.Now(),
	})
}

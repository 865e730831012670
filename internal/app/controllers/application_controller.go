package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/middleware"
)

// ApplicationController handles the public application endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Submit stores a complete application
// @Summary Submit application
// @Description Stores the applicant, degree, courses and document checklist atomically
// @Tags application
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Application data"
// @Success 201 {object} dto.APIResponse{data=dto.SubmitApplicationResponse} "Application stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid application data"
// @Failure 409 {object} dto.ErrorResponse "Application period closed"
// @Router /application [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	applicant, courseCount, err := c.applicationService.Submit(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.SubmitApplicationResponse{
			ApplicantID:     applicant.ID,
			ApplicantNumber: applicant.ApplicantNumber,
			CourseCount:     courseCount,
		},
		Timestamp: time.Now(),
	})
}

// PredictCourses extracts course drafts from transcript text
// @Summary Predict courses
// @Description Runs schema-constrained course extraction over the submitted text and returns course drafts with all three tiers seeded from the prediction. An unusable model response yields an empty list, not an error.
// @Tags application
// @Accept json
// @Produce json
// @Param request body dto.PredictionRequest true "Source text"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Course drafts extracted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /application/course-predictions [post]
func (c *ApplicationController) PredictCourses(ctx *gin.Context) {
	var req dto.PredictionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	candidates, err := c.applicationService.PredictCourses(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      services.PopulateFromPrediction(candidates),
		Timestamp: time.Now(),
	})
}

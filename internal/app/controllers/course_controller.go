package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/middleware"
)

// CourseController handles course reconciliation endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// Upsert writes a course batch for an applicant's degree
// @Summary Upsert courses
// @Description Validates and writes the whole batch or nothing. Rows with a known id replace the stored row, the rest insert.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Param request body []dto.CourseUpsertRequest true "Course batch"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/courses [put]
func (c *CourseController) Upsert(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req []dto.CourseUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	courses, err := c.courseService.UpsertForApplicant(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// List retrieves the applicant's courses grouped by subject area
// @Summary List courses bucketed by subject area
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.BucketedCoursesResponse} "Courses retrieved"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	buckets, order, err := c.courseService.ListBuckets(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{
			"buckets": buckets,
			"order":   order,
		},
		Timestamp: time.Now(),
	})
}

// Delete removes one course
// @Summary Delete course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant ID" Format(uuid)
// @Param courseId path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /applicants/{id}/courses/{courseId} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx, id, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course deleted"},
		Timestamp: time.Now(),
	})
}

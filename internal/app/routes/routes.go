package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/controllers"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	applicationController *controllers.ApplicationController,
	applicantController *controllers.ApplicantController,
	courseController *controllers.CourseController,
	documentController *controllers.DocumentController,
	skillController *controllers.SkillController,
	uploadController *controllers.UploadController,
	settingsController *controllers.SettingsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes: the applicant-facing application form ---
	v1.POST("/application", applicationController.Submit)
	v1.POST("/application/course-predictions", applicationController.PredictCourses)
	v1.POST("/uploads", uploadController.Upload)
	v1.GET("/settings", settingsController.Get)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated staff routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.PUT("/auth/password", authController.ChangePassword)

		// Review routes, open to reviewers and admins.
		review := authenticated.Group("")
		review.Use(authMiddleware.RoleRequired(models.RoleReviewer, models.RoleAdmin))
		{
			review.GET("/applicants", applicantController.List)
			review.GET("/applicants/stats", applicantController.Stats)
			review.GET("/applicants/export", applicantController.ExportCSV)
			review.GET("/applicants/:id", applicantController.Get)
			review.PUT("/applicants/:id/review-status", applicantController.UpdateReviewStatus)
			review.PUT("/applicants/:id/degree", applicantController.UpdateDegree)
			review.GET("/applicants/:id/export", applicantController.Export)

			review.GET("/applicants/:id/courses", courseController.List)
			review.PUT("/applicants/:id/courses", courseController.Upsert)
			review.DELETE("/applicants/:id/courses/:courseId", courseController.Delete)

			review.GET("/applicants/:id/documents", documentController.Get)
			review.PUT("/applicants/:id/documents", documentController.Update)

			review.GET("/applicants/:id/skills", skillController.List)
			review.PUT("/applicants/:id/skills", skillController.Replace)

			review.GET("/uploads/:id", uploadController.Download)
		}

		// Admin-only routes.
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/accounts", accountController.List)
			admin.POST("/accounts", accountController.Create)
			admin.GET("/accounts/:id", accountController.Get)
			admin.PUT("/accounts/:id", accountController.Update)
			admin.DELETE("/accounts/:id", accountController.Delete)
			admin.POST("/accounts/:id/reset-password", accountController.ResetPassword)
			admin.GET("/roles", accountController.GetRoles)

			admin.PUT("/settings", settingsController.Update)
			admin.DELETE("/applicants/:id", applicantController.Delete)
			admin.DELETE("/uploads/:id", uploadController.Delete)
		}
	}
}

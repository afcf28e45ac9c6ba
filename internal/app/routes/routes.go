// Package routes wires HTTP endpoints to their controllers
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyanali07/erp-backend/internal/app/controllers"
	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/middleware"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth     *controllers.AuthController
	Fee      *controllers.FeeController
	Document *controllers.DocumentController
	Exam     *controllers.ExamController
	Admin    *controllers.AdminController
}

// Setup registers all API routes on the given engine
func Setup(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public endpoints
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/signup", ctrl.Auth.Register)
	}

	// Authenticated endpoints
	protected := api.Group("")
	protected.Use(authMiddleware.JWTAuth())
	{
		student := protected.Group("/student")
		{
			student.GET("/fees", ctrl.Fee.ListFees)
			student.POST("/fees", ctrl.Fee.PayFee)
			student.GET("/documents", ctrl.Document.ListDocuments)
			student.POST("/documents", ctrl.Document.CreateDocument)
		}

		protected.GET("/exams", ctrl.Exam.ListExams)

		faculty := protected.Group("/faculty")
		faculty.Use(authMiddleware.RoleRequired(string(models.RoleFaculty), string(models.RoleAdmin)))
		{
			faculty.GET("/applications", ctrl.Document.ListApplications)
			faculty.PUT("/applications", ctrl.Document.ReviewApplication)
			faculty.POST("/exams", ctrl.Exam.CreateExam)
			faculty.POST("/results", ctrl.Exam.RecordResult)
		}

		admin := protected.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/overview", ctrl.Admin.Overview)
			admin.POST("/fees", ctrl.Fee.CreateFee)
		}
	}
}

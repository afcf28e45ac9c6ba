package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/app/services"
	"github.com/Sufiyanali07/erp-backend/internal/middleware"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

// ExamController handles exam scheduling and results
type ExamController struct {
	examService *services.ExamService
	userRepo    repositories.IUserRepository
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService, userRepo repositories.IUserRepository) *ExamController {
	return &ExamController{
		examService: examService,
		userRepo:    userRepo,
	}
}

// ListExams handles retrieving scheduled exams
// @Summary List exams
// @Description Returns exams matching the optional filters, ascending by date. When studentId is given, that student's results are included.
// @Tags exams
// @Produce json
// @Param studentId query string false "Include this student's results"
// @Param department query string false "Filter by department"
// @Param semester query int false "Filter by semester"
// @Success 200 {object} dto.APIResponse{data=dto.ExamListResponse} "Exams retrieved"
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	filter := dto.ExamFilter{
		StudentID:  ctx.Query("studentId"),
		Department: ctx.Query("department"),
	}
	if semesterStr := ctx.Query("semester"); semesterStr != "" {
		if semester, err := strconv.Atoi(semesterStr); err == nil {
			filter.Semester = semester
		}
	}

	if filter.StudentID != "" && currentRole(ctx) == string(models.RoleStudent) {
		own, err := resolveStudentID(ctx.Request.Context(), c.userRepo, currentUserID(ctx))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		if filter.StudentID != own {
			middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("cannot access another student's results"))
			return
		}
	}

	response, err := c.examService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// CreateExam handles scheduling an exam (faculty only)
// @Summary Schedule an exam
// @Description Creates a new scheduled exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.CreateExamRequest true "Exam fields"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	exam, err := c.examService.Schedule(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Exam scheduled", exam))
}

// RecordResult handles recording a student's result (faculty only)
// @Summary Record a result
// @Description Stores marks for an existing exam; grade and pass/fail are derived server-side
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.RecordResultRequest true "Result fields"
// @Success 201 {object} dto.APIResponse{data=models.Result} "Result recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or marks out of range"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/results [post]
func (c *ExamController) RecordResult(ctx *gin.Context) {
	var req dto.RecordResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.examService.RecordResult(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Result recorded", result))
}

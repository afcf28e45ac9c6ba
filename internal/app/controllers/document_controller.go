package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/app/services"
	"github.com/Sufiyanali07/erp-backend/internal/middleware"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

// DocumentController handles document requests and their review
type DocumentController struct {
	documentService *services.DocumentService
	userRepo        repositories.IUserRepository
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService, userRepo repositories.IUserRepository) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		userRepo:        userRepo,
	}
}

// ListDocuments handles retrieving a student's document requests
// @Summary List document requests
// @Description Returns a student's document requests, most recent first
// @Tags documents
// @Produce json
// @Param studentId query string false "Student identifier (defaults to the caller's own for students)"
// @Success 200 {object} dto.APIResponse{data=[]models.DocumentRequest} "Requests retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing studentId"
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/documents [get]
func (c *DocumentController) ListDocuments(ctx *gin.Context) {
	studentID := ctx.Query("studentId")

	if currentRole(ctx) == string(models.RoleStudent) {
		own, err := resolveStudentID(ctx.Request.Context(), c.userRepo, currentUserID(ctx))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		if studentID == "" {
			studentID = own
		} else if studentID != own {
			middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("cannot access another student's documents"))
			return
		}
	}

	docs, err := c.documentService.ListByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(docs))
}

// CreateDocument handles submitting a new document request
// @Summary Request a document
// @Description Creates a pending document request for the authenticated student
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.CreateDocumentRequest true "Request fields"
// @Success 201 {object} dto.APIResponse{data=models.DocumentRequest} "Request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/documents [post]
func (c *DocumentController) CreateDocument(ctx *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	studentID, err := resolveStudentID(ctx.Request.Context(), c.userRepo, currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	doc, err := c.documentService.Create(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Document request submitted", doc))
}

// ListApplications handles retrieving pending applications for review
// @Summary List pending applications
// @Description Returns all document requests awaiting review, most recent first
// @Tags applications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.DocumentRequest} "Applications retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/applications [get]
func (c *DocumentController) ListApplications(ctx *gin.Context) {
	docs, err := c.documentService.ListPending(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(docs))
}

// ReviewApplication handles resolving a pending application
// @Summary Review an application
// @Description Approves or rejects a pending document request, stamping the reviewer and remarks
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.ReviewApplicationRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=models.DocumentRequest} "Application reviewed"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already reviewed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/applications [put]
func (c *DocumentController) ReviewApplication(ctx *gin.Context) {
	var req dto.ReviewApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	doc, err := c.documentService.Review(ctx.Request.Context(), currentEmail(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Application reviewed", doc))
}

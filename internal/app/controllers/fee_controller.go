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

// FeeController handles fee listing and payment
type FeeController struct {
	feeService *services.FeeService
	userRepo   repositories.IUserRepository
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService, userRepo repositories.IUserRepository) *FeeController {
	return &FeeController{
		feeService: feeService,
		userRepo:   userRepo,
	}
}

// ListFees handles retrieving a student's fees
// @Summary List fees
// @Description Returns a student's fee records, most recent first. Students may only list their own.
// @Tags fees
// @Produce json
// @Param studentId query string false "Student identifier (defaults to the caller's own for students)"
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing studentId"
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/fees [get]
func (c *FeeController) ListFees(ctx *gin.Context) {
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
			middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("cannot access another student's fees"))
			return
		}
	}

	fees, err := c.feeService.ListByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fees))
}

// PayFee handles fee payment
// @Summary Pay a fee
// @Description Settles a pending or overdue fee and assigns a transaction id. Payment is simulated.
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.PayFeeRequest true "Payment details"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Fee paid"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 409 {object} dto.ErrorResponse "Fee already paid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/fees [post]
func (c *FeeController) PayFee(ctx *gin.Context) {
	var req dto.PayFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if currentRole(ctx) == string(models.RoleStudent) {
		own, err := resolveStudentID(ctx.Request.Context(), c.userRepo, currentUserID(ctx))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		fee, err := c.feeService.Get(ctx.Request.Context(), req.FeeID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		if fee.StudentID != own {
			middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("cannot pay another student's fee"))
			return
		}
	}

	fee, err := c.feeService.Pay(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Payment successful", fee))
}

// CreateFee handles creating a fee record (admin only)
// @Summary Create a fee record
// @Description Adds a pending fee for a student
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.CreateFeeRequest true "Fee fields"
// @Success 201 {object} dto.APIResponse{data=models.Fee} "Fee created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fee, err := c.feeService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(fee))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/services"
	"github.com/Sufiyanali07/erp-backend/internal/middleware"
)

// AdminController serves the admin dashboard aggregates
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Overview handles the admin overview aggregate
// @Summary Admin overview
// @Description Returns aggregate counts: students, faculty, pending fees, collected amount, department breakdown
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OverviewResponse} "Overview retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/overview [get]
func (c *AdminController) Overview(ctx *gin.Context) {
	overview, err := c.adminService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(overview))
}

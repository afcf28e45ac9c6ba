package services

import (
	"context"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
)

// AdminService aggregates counts for the admin dashboard
type AdminService struct {
	userRepo repositories.IUserRepository
	feeRepo  repositories.IFeeRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(userRepo repositories.IUserRepository, feeRepo repositories.IFeeRepository) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		feeRepo:  feeRepo,
	}
}

// Overview collects the aggregate counts shown on the admin dashboard
func (s *AdminService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	students, err := s.userRepo.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	faculty, err := s.userRepo.CountByRole(ctx, models.RoleFaculty)
	if err != nil {
		return nil, err
	}

	pendingFees, err := s.feeRepo.CountByStatus(ctx, models.FeeStatusPending, models.FeeStatusOverdue)
	if err != nil {
		return nil, err
	}

	collected, err := s.feeRepo.SumCollected(ctx)
	if err != nil {
		return nil, err
	}

	byDepartment, err := s.userRepo.CountStudentsByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	departments := make([]dto.DepartmentCount, 0, len(byDepartment))
	for _, d := range byDepartment {
		departments = append(departments, dto.DepartmentCount{
			Department: d.Department,
			Students:   d.Students,
		})
	}

	return &dto.OverviewResponse{
		Students:        students,
		Faculty:         faculty,
		PendingFees:     pendingFees,
		CollectedAmount: collected,
		Departments:     departments,
	}, nil
}

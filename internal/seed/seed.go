// Package seed provisions initial database records
package seed

import (
	"context"
	"strconv"
	"time"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/config"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/auth"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/logger"
)

// EnsureAdmin creates the configured administrator account if it does not
// exist yet. It runs on every startup and is idempotent.
func EnsureAdmin(ctx context.Context, userRepo repositories.IUserRepository, cfg *config.Config) error {
	if cfg.Admin.Password == "" {
		logger.Warn().Msg("Admin password not configured, skipping admin seed")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
		Profile: models.Profile{
			FirstName: "System",
			LastName:  "Administrator",
		},
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", cfg.Admin.Email).Msg("Admin account created")
	return nil
}

// CreateDemoData populates the database with sample students and fee
// records for local development.
func CreateDemoData(ctx context.Context, userRepo repositories.IUserRepository, feeRepo repositories.IFeeRepository) error {
	students := []struct {
		email     string
		firstName string
		lastName  string
		studentID string
		dept      string
		semester  int
	}{
		{"rahul.sharma@college.edu", "Rahul", "Sharma", "STU2024001", "Computer Science", 4},
		{"priya.patel@college.edu", "Priya", "Patel", "STU2024002", "Electronics", 4},
		{"amit.verma@college.edu", "Amit", "Verma", "STU2024003", "Mechanical", 2},
	}

	hashed, err := auth.HashPassword("student123")
	if err != nil {
		return err
	}

	for _, s := range students {
		exists, err := userRepo.EmailExists(ctx, s.email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		user := &models.User{
			Email:    s.email,
			Password: hashed,
			Role:     models.RoleStudent,
			Profile: models.Profile{
				FirstName:  s.firstName,
				LastName:   s.lastName,
				StudentID:  s.studentID,
				Department: s.dept,
				Semester:   s.semester,
			},
		}
		if _, err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		fees := []models.Fee{
			{
				StudentID:   s.studentID,
				Description: "Tuition Fee - Semester " + strconv.Itoa(s.semester),
				Amount:      45000,
				DueDate:     time.Now().AddDate(0, 1, 0),
				Status:      models.FeeStatusPending,
			},
			{
				StudentID:   s.studentID,
				Description: "Library Fee",
				Amount:      1500,
				DueDate:     time.Now().AddDate(0, 0, -15),
				Status:      models.FeeStatusOverdue,
			},
		}
		for i := range fees {
			if _, err := feeRepo.Create(ctx, &fees[i]); err != nil {
				return err
			}
		}

		logger.Info().Str("email", s.email).Str("studentId", s.studentID).Msg("Demo student created")
	}

	return nil
}

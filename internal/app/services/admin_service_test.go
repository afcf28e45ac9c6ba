package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
)

func TestOverviewAggregates(t *testing.T) {
	userRepo := newFakeUserRepo()
	feeRepo := newFakeFeeRepo()
	svc := NewAdminService(userRepo, feeRepo)
	ctx := context.Background()

	students := []struct {
		email string
		dept  string
	}{
		{"a@college.edu", "Computer Science"},
		{"b@college.edu", "Computer Science"},
		{"c@college.edu", "Electronics"},
	}
	for i, s := range students {
		_, err := userRepo.Create(ctx, &models.User{
			Email: s.email,
			Role:  models.RoleStudent,
			Profile: models.Profile{
				StudentID:  "STU202400" + string(rune('1'+i)),
				Department: s.dept,
			},
		})
		require.NoError(t, err)
	}
	_, err := userRepo.Create(ctx, &models.User{Email: "f@college.edu", Role: models.RoleFaculty})
	require.NoError(t, err)
	_, err = userRepo.Create(ctx, &models.User{Email: "admin@college.edu", Role: models.RoleAdmin})
	require.NoError(t, err)

	seedFee(t, feeRepo, "STU2024001", models.FeeStatusPending, 45000)
	seedFee(t, feeRepo, "STU2024002", models.FeeStatusOverdue, 1500)
	paid := seedFee(t, feeRepo, "STU2024003", models.FeeStatusPending, 2500)
	_, err = feeRepo.Pay(ctx, paid.ID, "upi", "txn-1", time.Now())
	require.NoError(t, err)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), overview.Students)
	require.Equal(t, int64(1), overview.Faculty)
	// Pending includes both not-yet-due and overdue records.
	require.Equal(t, int64(2), overview.PendingFees)
	require.Equal(t, 2500.0, overview.CollectedAmount)

	byDept := map[string]int64{}
	for _, d := range overview.Departments {
		byDept[d.Department] = d.Students
	}
	require.Equal(t, int64(2), byDept["Computer Science"])
	require.Equal(t, int64(1), byDept["Electronics"])
}

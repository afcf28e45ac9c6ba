// Package controllers handles HTTP request handling
package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/middleware"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

// currentRole returns the authenticated role set by the JWT middleware
func currentRole(ctx *gin.Context) string {
	role, _ := ctx.Get(middleware.ContextRole)
	if s, ok := role.(string); ok {
		return s
	}
	return ""
}

// currentUserID returns the authenticated user id set by the JWT middleware
func currentUserID(ctx *gin.Context) string {
	id, _ := ctx.Get(middleware.ContextUserID)
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}

// currentEmail returns the authenticated email set by the JWT middleware
func currentEmail(ctx *gin.Context) string {
	email, _ := ctx.Get(middleware.ContextEmail)
	if s, ok := email.(string); ok {
		return s
	}
	return ""
}

// resolveStudentID looks up the caller's external student identifier from
// their stored profile. Resource ownership is checked against this value,
// never against anything the client submits.
func resolveStudentID(ctx context.Context, userRepo repositories.IUserRepository, userID string) (string, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}

	user, err := userRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if user.Role != models.RoleStudent || user.Profile.StudentID == "" {
		return "", apperrors.NewForbiddenError("no student profile associated with this account")
	}
	return user.Profile.StudentID, nil
}

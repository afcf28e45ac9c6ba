package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/services"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *stubUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := &stubUserRepo{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	ctrl := NewAuthController(services.NewAuthService(userRepo, jwtService, zerolog.Nop()), zerolog.Nop())

	router := gin.New()
	router.POST("/auth/login", ctrl.Login)
	router.POST("/auth/signup", ctrl.Register)
	return router, userRepo
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginEndpoint(t *testing.T) {
	router, userRepo := newAuthTestRouter(t)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	_, err = userRepo.Create(context.Background(), &models.User{
		Email:    "rahul@college.edu",
		Password: hash,
		Role:     models.RoleStudent,
		Profile:  models.Profile{FirstName: "Rahul", LastName: "Sharma", StudentID: "STU2024001"},
	})
	require.NoError(t, err)

	recorder := postJSON(router, "/auth/login", `{"email":"rahul@college.edu","password":"secret123","userType":"student"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "/student-dashboard", resp.Data.Redirect)
	require.NotEmpty(t, resp.Data.Token.AccessToken)

	// The password hash never appears in the payload.
	require.NotContains(t, recorder.Body.String(), hash)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := postJSON(router, "/auth/login", `{"email":"nobody@college.edu","password":"secret123","userType":"student"}`)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, dto.ErrorCodeInvalidCredentials, resp.Error.Code)
}

func TestLoginEndpointValidation(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"rahul@college.edu","userType":"student"}`},
		{"bad email", `{"email":"not-an-email","password":"secret123","userType":"student"}`},
		{"bad user type", `{"email":"rahul@college.edu","password":"secret123","userType":"principal"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := postJSON(router, "/auth/login", tc.body)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestSignupEndpoint(t *testing.T) {
	router, userRepo := newAuthTestRouter(t)

	body := `{"email":"priya@college.edu","password":"secret123","userType":"student","firstName":"Priya","lastName":"Patel","studentId":"STU2024002"}`
	recorder := postJSON(router, "/auth/signup", body)
	require.Equal(t, http.StatusCreated, recorder.Code)

	stored, err := userRepo.GetByEmail(context.Background(), "priya@college.edu")
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, stored.Role)

	// Duplicate signup fails without clobbering the account.
	recorder = postJSON(router, "/auth/signup", body)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	// Admin accounts cannot be created through signup.
	recorder = postJSON(router, "/auth/signup", `{"email":"boss@college.edu","password":"secret123","userType":"admin","firstName":"Big","lastName":"Boss"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

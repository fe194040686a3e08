package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalmiddleware "github.com/scintranet/staff-api/internal/middleware"
	"github.com/scintranet/staff-api/internal/models"
	"github.com/scintranet/staff-api/internal/service"
)

type stubApprovalAccountRepo struct {
	accounts []models.StaffAccount
	profiles []models.StaffProfile
}

func (s *stubApprovalAccountRepo) CreateAccount(ctx context.Context, account *models.StaffAccount) error {
	if account.ID == "" {
		account.ID = "new-account-id"
	}
	s.accounts = append(s.accounts, *account)
	return nil
}

func (s *stubApprovalAccountRepo) CreateProfile(ctx context.Context, profile *models.StaffProfile) error {
	s.profiles = append(s.profiles, *profile)
	return nil
}

type stubApprovalPendingRepo struct {
	byID     map[int64]models.PendingUser
	statuses map[int64]models.PendingStatus
}

func (s *stubApprovalPendingRepo) FindByID(ctx context.Context, id int64) (*models.PendingUser, error) {
	if p, ok := s.byID[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubApprovalPendingRepo) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	var out []models.PendingUser
	for _, p := range s.byID {
		if p.Status == models.PendingStatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubApprovalPendingRepo) UpdateStatus(ctx context.Context, id int64, status models.PendingStatus) error {
	if s.statuses == nil {
		s.statuses = make(map[int64]models.PendingStatus)
	}
	s.statuses[id] = status
	return nil
}

func newApprovalRouter(pending *stubApprovalPendingRepo, accounts *stubApprovalAccountRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewApprovalService(accounts, pending, nil, nil)
	handler := NewApprovalHandler(svc)

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(func(c *gin.Context) {
		// Claims would normally be attached by the JWT middleware.
		role := c.GetHeader("X-Test-Role")
		if role != "" {
			c.Set(internalmiddleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.Role(role)})
		}
		c.Next()
	})
	admin.Use(internalmiddleware.RequireRoles(models.RoleSuperAdmin))
	admin.GET("/pending-users", handler.ListPending)
	admin.POST("/pending-users/:id/accept", handler.Accept)
	return router
}

func TestApprovalEndpointsRequireSuperAdmin(t *testing.T) {
	router := newApprovalRouter(&stubApprovalPendingRepo{byID: map[int64]models.PendingUser{}}, &stubApprovalAccountRepo{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/pending-users", nil)
	req.Header.Set("X-Test-Role", string(models.RoleStaff))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/admin/pending-users", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApprovalAcceptFlow(t *testing.T) {
	pending := &stubApprovalPendingRepo{byID: map[int64]models.PendingUser{
		5: {ID: 5, Email: "new@scintranet.edu", FullName: "New Staff", PasswordHash: "$2a$10$h", Status: models.PendingStatusPending},
	}}
	accounts := &stubApprovalAccountRepo{}
	router := newApprovalRouter(pending, accounts)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/pending-users/5/accept", nil)
	req.Header.Set("X-Test-Role", string(models.RoleSuperAdmin))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data service.AcceptResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "new@scintranet.edu", envelope.Data.Email)
	assert.Equal(t, "new-account-id", envelope.Data.UserID)

	require.Len(t, accounts.profiles, 1)
	assert.Equal(t, models.RoleStaff, accounts.profiles[0].Role)
	assert.True(t, accounts.profiles[0].IsApproved)
	assert.Equal(t, models.PendingStatusAccepted, pending.statuses[5])
}

func TestApprovalAcceptUnknownUser(t *testing.T) {
	router := newApprovalRouter(&stubApprovalPendingRepo{byID: map[int64]models.PendingUser{}}, &stubApprovalAccountRepo{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/pending-users/99/accept", nil)
	req.Header.Set("X-Test-Role", string(models.RoleSuperAdmin))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

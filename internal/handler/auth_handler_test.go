package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scintranet/staff-api/internal/middleware"
	"github.com/scintranet/staff-api/internal/models"
	"github.com/scintranet/staff-api/internal/service"
	"github.com/scintranet/staff-api/pkg/response"
)

func newAuthHandlerFixture() *AuthHandler {
	svc := service.NewAuthService(nil, nil, nil, nil, service.AuthConfig{
		TokenSecret: "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "sci-intranet",
	})
	return NewAuthHandler(svc)
}

func TestAuthHandlerLogoutAcknowledgesDisposal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAuthHandlerFixture()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "acc-1", Role: models.RoleStaff})

	handler.Logout(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Nil(t, envelope.Error)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "logged out", data["message"])
}

func TestAuthHandlerLogoutRequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAuthHandlerFixture()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
	c.Request = req

	handler.Logout(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"waitline/internal/handler/dto/request"
	"waitline/tests/common/dbtest"
	"waitline/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, phoneNumber, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{PhoneNumber: phoneNumber, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, phoneNumber, name, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, phoneNumber, name, role)
	return LoginUser(t, router, phoneNumber, "password123")
}

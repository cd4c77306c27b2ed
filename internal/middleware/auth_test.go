package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VorteXchange1987/kinea-1/internal/models"
	"github.com/VorteXchange1987/kinea-1/internal/security"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

const testSecret = "test-secret"

// stubUsers serves a fixed set of accounts by id.
type stubUsers struct {
	users map[string]models.User
}

func (s *stubUsers) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, errors.New("no rows")
	}
	return user, nil
}

func newAuthRouter(t *testing.T, users UserSource, min api.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handlers := []gin.HandlerFunc{Auth(testSecret, users)}
	if min != "" {
		handlers = append(handlers, RequireRole(min))
	}
	handlers = append(handlers, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	router.GET("/guarded", handlers...)
	return router
}

func doGuarded(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload.Detail
}

func mintToken(t *testing.T, userID string, role api.Role) string {
	t.Helper()
	token, err := security.GenerateToken(testSecret, userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthMissingHeader(t *testing.T) {
	router := newAuthRouter(t, &stubUsers{}, "")

	rec := doGuarded(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthGarbageToken(t *testing.T) {
	router := newAuthRouter(t, &stubUsers{}, "")

	rec := doGuarded(router, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Geçersiz token", detailOf(t, rec))
}

func TestAuthExpiredToken(t *testing.T) {
	router := newAuthRouter(t, &stubUsers{}, "")

	expired, err := security.GenerateToken(testSecret, "u-1", api.RoleUser, -time.Minute)
	require.NoError(t, err)

	rec := doGuarded(router, expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token süresi dolmuş", detailOf(t, rec))
}

func TestAuthUnknownUser(t *testing.T) {
	router := newAuthRouter(t, &stubUsers{}, "")

	rec := doGuarded(router, mintToken(t, "ghost", api.RoleUser))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Kullanıcı bulunamadı", detailOf(t, rec))
}

func TestAuthBannedUser(t *testing.T) {
	users := &stubUsers{users: map[string]models.User{
		"u-1": {ID: "u-1", Role: api.RoleUser, IsBanned: true},
	}}
	router := newAuthRouter(t, users, "")

	rec := doGuarded(router, mintToken(t, "u-1", api.RoleUser))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Hesabınız engellenmiş", detailOf(t, rec))
}

func TestAuthPassesValidUser(t *testing.T) {
	users := &stubUsers{users: map[string]models.User{
		"u-1": {ID: "u-1", Role: api.RoleUser},
	}}
	router := newAuthRouter(t, users, "")

	rec := doGuarded(router, mintToken(t, "u-1", api.RoleUser))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// The role check uses the stored role, not the token claim: a token
// minted with an admin claim gains nothing once the row says USER.
func TestStoredRoleOverridesTokenClaim(t *testing.T) {
	users := &stubUsers{users: map[string]models.User{
		"u-1": {ID: "u-1", Role: api.RoleUser},
	}}
	router := newAuthRouter(t, users, api.RoleAdmin)

	rec := doGuarded(router, mintToken(t, "u-1", api.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Yetkisiz erişim", detailOf(t, rec))
}

func TestRequireRoleHierarchy(t *testing.T) {
	cases := []struct {
		role api.Role
		min  api.Role
		want int
	}{
		{api.RoleUser, api.RoleModerator, http.StatusForbidden},
		{api.RoleModerator, api.RoleModerator, http.StatusOK},
		{api.RoleModerator, api.RoleAdmin, http.StatusForbidden},
		{api.RoleAdmin, api.RoleModerator, http.StatusOK},
		{api.RoleAdmin, api.RoleAdmin, http.StatusOK},
		{api.RoleSuperAdmin, api.RoleAdmin, http.StatusOK},
	}

	for _, tc := range cases {
		users := &stubUsers{users: map[string]models.User{
			"u-1": {ID: "u-1", Role: tc.role},
		}}
		router := newAuthRouter(t, users, tc.min)

		rec := doGuarded(router, mintToken(t, "u-1", tc.role))
		assert.Equal(t, tc.want, rec.Code, "role %s against min %s", tc.role, tc.min)
	}
}

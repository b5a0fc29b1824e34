package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"habitboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := r.Group("/", JWTAuth())
	auth.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetInt("user_id"), "role": c.GetString("user_role")})
	})
	admin := auth.Group("/", AdminRequired())
	admin.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthRejectsMissingOrBadToken(t *testing.T) {
	r := testRouter()

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "not-a-token").Code)
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	r := testRouter()
	token, err := IssueToken(&model.User{ID: 7, Username: "alice", Role: model.RoleMember})
	require.NoError(t, err)

	w := get(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":7`)
}

func TestAdminRequired(t *testing.T) {
	r := testRouter()

	member, err := IssueToken(&model.User{ID: 1, Username: "alice", Role: model.RoleMember})
	require.NoError(t, err)
	admin, err := IssueToken(&model.User{ID: 2, Username: "root", Role: model.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", member).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", admin).Code)
}

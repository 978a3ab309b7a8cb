package follow

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupFollowRouter(actingUserID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actingUserID != "" {
			c.Set("user_id", actingUserID)
		}
	})
	r.POST("/api/users/:username/follow", FollowAuthor)
	r.DELETE("/api/users/:username/follow", UnfollowAuthor)
	r.GET("/api/users/:username/followers", GetFollowers)
	return r
}

func TestFollowUnknownUsername(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")
	r := setupFollowRouter(a.ID)

	req := httptest.NewRequest(http.MethodPost, "/api/users/ghost/follow", nil)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, int64(0), countEdges(t))
}

func TestFollowRedirectsToProfile(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")
	createTestUser(t, "boris")
	r := setupFollowRouter(a.ID)

	req := httptest.NewRequest(http.MethodPost, "/api/users/boris/follow", nil)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, http.StatusFound, res.Code)
	assert.Equal(t, "/api/users/boris", res.Header().Get("Location"))
	assert.Equal(t, int64(1), countEdges(t))

	// Redoubler la requête ne crée pas de deuxième arête et redirige pareil
	res = httptest.NewRecorder()
	r.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/api/users/boris/follow", nil))
	assert.Equal(t, http.StatusFound, res.Code)
	assert.Equal(t, int64(1), countEdges(t))
}

func TestUnfollowWithoutEdgeIs404(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")
	createTestUser(t, "boris")
	r := setupFollowRouter(a.ID)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/boris/follow", nil)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestGetFollowers(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")
	b := createTestUser(t, "boris")
	assert.NoError(t, Add(a.ID, b.ID))
	r := setupFollowRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/users/boris/followers", nil)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "alice")
}

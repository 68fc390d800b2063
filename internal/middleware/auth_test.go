package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kairos/internal/domain"
	"kairos/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken(42, "editor")

	router := gin.New()
	router.Use(Auth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "editor")
}

func TestAuth_MissingOrBadToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)

	router := gin.New()
	router.Use(Auth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler must not be reached")
	})

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dGVzdA=="},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		})
	}
}

func TestRequireMinRole(t *testing.T) {
	router := gin.New()
	router.GET("/admin", func(c *gin.Context) {
		c.Set("role", c.Query("as"))
		c.Next()
	}, RequireMinRole(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for role, want := range map[string]int{
		"admin":  http.StatusOK,
		"editor": http.StatusForbidden,
		"viewer": http.StatusForbidden,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin?as="+role, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "role %s", role)
	}
}

func TestEditorOrAdmin_AllowsEditor(t *testing.T) {
	router := gin.New()
	router.POST("/events", func(c *gin.Context) {
		c.Set("role", "editor")
		c.Next()
	}, EditorOrAdmin(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

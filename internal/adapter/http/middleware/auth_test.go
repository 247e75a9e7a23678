package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldservice/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorFunc func(string) (*auth.Claims, error)

func (f validatorFunc) Validate(token string) (*auth.Claims, error) { return f(token) }

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	v := validatorFunc(func(token string) (*auth.Claims, error) {
		switch token {
		case "good":
			return &auth.Claims{UserID: "user-1", Username: "administrador"}, nil
		case "old":
			return nil, auth.ErrExpiredToken
		}
		return nil, auth.ErrInvalidToken
	})

	r := gin.New()
	r.GET("/private", RequireAuth(v), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, claims.Username)
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, `{"kind":"Unauthorized","message":"Missing bearer token"}`},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, `{"kind":"Unauthorized","message":"Missing bearer token"}`},
		{"invalid token", "Bearer forged", http.StatusUnauthorized, `{"kind":"Unauthorized","message":"Invalid or expired token"}`},
		{"expired token", "Bearer old", http.StatusUnauthorized, `{"kind":"Unauthorized","message":"Invalid or expired token"}`},
		{"valid token", "bearer good", http.StatusOK, "administrador"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestClaimsFrom_Absent(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := ClaimsFrom(c)
	assert.False(t, ok)
}

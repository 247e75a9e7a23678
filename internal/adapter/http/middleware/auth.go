package middleware

import (
	"errors"
	"fieldservice/internal/infrastructure/auth"
	"fieldservice/internal/infrastructure/logger"
	"fieldservice/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ClaimsKey = "claims"

// TokenValidator checks a bearer token and returns its claims.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

var (
	errMissingToken = pkg.NewDomainErrorSimple("Unauthorized", "Missing bearer token", http.StatusUnauthorized)
	errBadToken     = pkg.NewDomainErrorSimple("Unauthorized", "Invalid or expired token", http.StatusUnauthorized)
)

// RequireAuth rejects requests without a valid "Authorization: Bearer" token.
func RequireAuth(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := v.Validate(strings.TrimSpace(token))
		if err != nil {
			if !errors.Is(err, auth.ErrExpiredToken) {
				logger.FromGin(c).Warn("[http][auth] rejected token", zap.Error(err))
			}
			c.AbortWithStatusJSON(errBadToken.HTTPStatus, errBadToken.ToHTTPError())
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

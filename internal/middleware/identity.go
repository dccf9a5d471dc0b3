package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dccp-developers/dccphub-api/internal/models"
	"github.com/dccp-developers/dccphub-api/pkg/config"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
	"github.com/dccp-developers/dccphub-api/pkg/response"
)

// ContextIdentityKey is the gin context key storing the identity context.
const ContextIdentityKey = "currentIdentity"

// Identity verifies the identity provider's bearer token and exposes the
// principal's role metadata to handlers. Tokens are issued and managed by
// the external provider; this middleware only verifies the signature and
// reads the claims.
func Identity(cfg config.IdentityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims := &models.IdentityClaims{}
		opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
		if cfg.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(cfg.Issuer))
		}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.SigningKey), nil
		}, opts...)
		if err != nil || !token.Valid {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token"))
			c.Abort()
			return
		}

		identity := models.IdentityContext{
			UserID:    claims.Subject,
			Role:      models.Role(claims.Role),
			StudentID: claims.StudentID,
			FacultyID: claims.FacultyID,
		}
		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

// RequireRole gates a route on the principal carrying the given role and
// its linked domain id. Principals without a role, or without the id the
// role requires, are routed to onboarding.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if identity.Role == "" || !identity.Onboarded() {
			response.Error(c, appErrors.ErrOnboardingRequired)
			c.Abort()
			return
		}
		if identity.Role != role {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity context stored by the Identity middleware.
func IdentityFrom(c *gin.Context) (models.IdentityContext, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return models.IdentityContext{}, false
	}
	identity, ok := value.(models.IdentityContext)
	return identity, ok
}

// Package middleware holds the gin middleware of the portal API.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/config"
	"github.com/maxty9378/paneldoirp-sub002/internal/access"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	ctxUserID       = "userID"
	ctxRole         = "role"
	ctxCapabilities = "capabilities"
)

// Claims are the bearer token claims: the user id in "sub" plus the portal role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens. Issuing tokens is the identity
// provider's job; IssueToken exists for tooling and tests.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{secret: []byte(cfg.Auth.JWTSecret), issuer: cfg.Auth.Issuer}
}

func (a *Authenticator) IssueToken(userID uuid.UUID, role access.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) Parse(tokenStr string) (*Claims, error) {
	if len(a.secret) == 0 {
		return nil, errors.New("no signing secret configured")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's id, role and capabilities in the gin context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing bearer token"})
			return
		}
		claims, err := a.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid token"})
			return
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid token subject"})
			return
		}
		role := access.Role(claims.Role)
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: fmt.Sprintf("unknown role %q", claims.Role)})
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Set(ctxCapabilities, access.CapabilitiesFor(role))
		c.Next()
	}
}

// RequireCapability aborts with 403 unless allowed returns true for the caller.
func RequireCapability(name string, allowed func(access.Capabilities) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(CapabilitiesFrom(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "missing capability: " + name})
			return
		}
		c.Next()
	}
}

func UserIDFrom(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ctxUserID); ok {
		return v.(uuid.UUID)
	}
	return uuid.Nil
}

func RoleFrom(c *gin.Context) access.Role {
	if v, ok := c.Get(ctxRole); ok {
		return v.(access.Role)
	}
	return ""
}

func CapabilitiesFrom(c *gin.Context) access.Capabilities {
	if v, ok := c.Get(ctxCapabilities); ok {
		return v.(access.Capabilities)
	}
	return access.Capabilities{}
}

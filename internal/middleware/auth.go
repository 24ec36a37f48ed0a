package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

const (
	principalKey = "principal"
	subjectKey   = "subject"
)

var ErrNoPrincipal = errors.New("no authenticated principal in request context")

// Authenticate parses the Bearer token, verifies its HS256 signature and
// stores the `sub` claim as the request subject. If a profile exists for the
// subject it is loaded and stored as the principal; requests with a valid
// token but no profile pass through so the registration endpoint can create
// one. Requester identity is always read explicitly from the gin context;
// there is no ambient fallback.
func Authenticate(secret string, profiles repository.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		sub, err := verify(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(subjectKey, sub)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		p, err := profiles.GetByID(ctx, sub)
		if err == nil {
			c.Set(principalKey, p)
		} else if !errors.Is(err, identity.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "profile lookup failed"})
			return
		}

		c.Next()
	}
}

// RequireProfile rejects authenticated subjects that have not registered a
// profile yet. Every endpoint except registration sits behind it.
func RequireProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := Principal(c); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no profile registered for this identity"})
			return
		}
		c.Next()
	}
}

// Principal returns the authenticated profile injected by Authenticate.
func Principal(c *gin.Context) (*identity.Profile, error) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, ErrNoPrincipal
	}
	p, ok := v.(*identity.Profile)
	if !ok || p == nil {
		return nil, ErrNoPrincipal
	}
	return p, nil
}

// Subject returns the verified token subject, set even before a profile exists.
func Subject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

func verify(raw, secret string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

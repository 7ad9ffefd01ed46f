package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"ktisk/internal/domain/entities"
	"ktisk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const viewerContextKey = "viewer"

var errAuthRequired = pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)

// Auth resolves the Viewer identity from an HMAC-signed bearer JWT. The
// session service issues the tokens; this middleware only verifies them and
// extracts the subject claim.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	if secret == "" {
		log.Printf("[auth] missing AUTH_JWT_SECRET; authenticated routes will reject every request")
	}
	return &Auth{secret: []byte(secret)}
}

// Require aborts with 401 when the request carries no valid session.
func (a *Auth) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, err := a.parseViewer(c)
		if err != nil {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}
		SetViewer(c, viewer)
		c.Next()
	}
}

// Optional resolves the viewer when a valid token is present and lets
// anonymous requests through. An invalid token is treated as anonymous, not
// rejected: public reads must keep working for signed-out sessions.
func (a *Auth) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if viewer, err := a.parseViewer(c); err == nil {
			SetViewer(c, viewer)
		}
		c.Next()
	}
}

// SetViewer attaches a resolved viewer to the request context.
func SetViewer(c *gin.Context, viewer entities.Viewer) {
	c.Set(viewerContextKey, viewer)
}

// ViewerFrom returns the viewer resolved by Require/Optional; the zero Viewer
// means anonymous.
func ViewerFrom(c *gin.Context) entities.Viewer {
	if v, ok := c.Get(viewerContextKey); ok {
		if viewer, ok := v.(entities.Viewer); ok {
			return viewer
		}
	}
	return entities.Viewer{}
}

func (a *Auth) parseViewer(c *gin.Context) (entities.Viewer, error) {
	header := c.GetHeader("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return entities.Viewer{}, errors.New("missing bearer token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.Viewer{}, errors.New("invalid token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return entities.Viewer{}, errors.New("token missing subject")
	}
	return entities.Viewer{ID: sub}, nil
}

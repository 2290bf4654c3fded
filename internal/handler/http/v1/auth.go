package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/help_hualien/internal/auth"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// BearerAuthMiddleware - middleware для аутентификации по токену провайдера идентификации
func BearerAuthMiddleware(verifier auth.Verifier, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			log.WithField("path", c.FullPath()).Warn("Bearer token missing from request")
			respondFail(c, http.StatusUnauthorized, "Missing Bearer token")
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).WithField("path", c.FullPath()).Warn("Token verification failed")
			respondFail(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// currentIdentity возвращает личность, сохраненную BearerAuthMiddleware
func currentIdentity(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ctxAdminID is the gin context key holding the authenticated maintainer id.
const ctxAdminID = "adminId"

// signUpAuthMiddleware lets anonymous sign-up through to the bootstrap path;
// a request carrying credentials must present a valid maintainer token.
func (h *Handler) signUpAuthMiddleware(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.Next()
		return
	}
	h.adminAuthMiddleware(c)
}

// adminAuthMiddleware guards catalog administration behind a bearer token.
func (h *Handler) adminAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	adminID, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("admin_token_rejected", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxAdminID, adminID)
	c.Next()
}

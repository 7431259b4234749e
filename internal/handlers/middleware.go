package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// operatorIDKey is where requireOperator leaves the signed-in operator ID.
const operatorIDKey = "operatorId"

// guard returns requireOperator when auth is enabled and a pass-through otherwise.
func (h *Handler) guard() gin.HandlerFunc {
	if !h.opts.AuthEnabled {
		return func(c *gin.Context) { c.Next() }
	}
	return h.requireOperator
}

func (h *Handler) requireOperator(c *gin.Context) {
	token, reason := bearerToken(c.GetHeader("Authorization"))
	if reason != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
		return
	}

	id, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("operator_token_rejected", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.Set(operatorIDKey, id)
	c.Next()
}

// bearerToken extracts the token from an Authorization header. The scheme
// is matched case-insensitively.
func bearerToken(header string) (token, reason string) {
	if header == "" {
		return "", "missing Authorization header"
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", "invalid Authorization header format"
	}
	return token, ""
}

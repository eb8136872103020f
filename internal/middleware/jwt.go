package middleware

import (
	"planetary_api/internal/utils" // JWT utility functions
	"strings"                      // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// SubjectKey is the context key holding the email of an identified caller
const SubjectKey = "subject"

// IdentifyBearer records the subject of a valid bearer token on the context.
// It never rejects a request: no route requires authentication.
func IdentifyBearer(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if tokenStr, ok := strings.CutPrefix(authHeader, "Bearer "); ok && tokenStr != "" {
			if claims, err := utils.ParseJWT(tokenStr, secret); err == nil {
				c.Set(SubjectKey, claims.Subject) // Store subject in context
			}
		}
		c.Next() // Proceed to the next handler
	}
}

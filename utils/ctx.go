package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user id set by the auth
// middleware, or 0 when unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

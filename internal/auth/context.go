package auth

import "github.com/gin-gonic/gin"

const staffEmailKey = "staffEmail"

// GetStaffEmail returns the authenticated staff email or empty string.
func GetStaffEmail(c *gin.Context) string {
	return c.GetString(staffEmailKey)
}

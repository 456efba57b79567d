package response

import "github.com/gin-gonic/gin"

// Detail writes the API's error shape: {"detail": "<message>"}.
func Detail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}

// Deleted writes the confirmation shape used by admin delete endpoints.
func Deleted(c *gin.Context, statusCode int, message string, idField string, id int64) {
	c.JSON(statusCode, gin.H{"message": message, idField: id})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks a flat envelope: success bodies are plain JSON objects,
// error bodies are {"error": "<fixed message>"}. Upstream detail never
// reaches the caller; handlers log it and respond with a fixed string.

// OK sends a 200 response with the given body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends a 400 validation error.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// UpstreamError sends a 500 for a failed provider or fetch call.
func UpstreamError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message})
}

// Conflict sends a 409 when a flow is already in flight for the session.
func Conflict(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": message})
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Хуудас олдсонгүй"})
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Буруу хүсэлтийн арга"})
}

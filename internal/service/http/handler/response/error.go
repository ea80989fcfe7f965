package response

import "github.com/gin-gonic/gin"

var (
	ParamError = func(message string) gin.H {
		return gin.H{"error": message}
	}

	InternalError = func(message string) gin.H {
		return gin.H{"error": message}
	}

	Success = gin.H{"success": true}
)

package http_access_middleware

import (
	"net/http"

	http_common "github.com/ZeNuW/filmorate/internal/delivery/http/common"
	"github.com/gin-gonic/gin"
)

const ModeReadOnly = "RO"

// ReadOnlyBadGatewayMiddleware rejects writes on instances started in RO mode.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ModeReadOnly {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusBadGateway, http_common.ErrorResponse{
			Error:   "Bad Gateway",
			Message: "Write operations not allowed on read-only instance",
			Code:    http.StatusBadGateway,
		})
	}
}

package http_logger_middleware

import (
	"log/slog"
	"net/http"
	"time"

	http_common "github.com/ZeNuW/filmorate/internal/delivery/http/common"
	"github.com/ZeNuW/filmorate/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request id and a request-scoped logger, recovers
// panics and logs one line per completed request.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		reqLogger := base.With(
			slog.String("request_id", requestID),
			slog.String("method", ctx.Request.Method),
			slog.String("path", ctx.Request.URL.Path),
			slog.String("remote_addr", ctx.ClientIP()),
		)

		reqCtx := logging.WithLogger(ctx.Request.Context(), reqLogger)
		ctx.Request = ctx.Request.WithContext(logging.WithRequestID(reqCtx, requestID))
		ctx.Header(RequestIDHeader, requestID)

		defer func() {
			if rec := recover(); rec != nil {
				reqLogger.Error("panic recovered", "panic", rec)
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, http_common.ErrorResponse{
					Error: http.StatusText(http.StatusInternalServerError),
					Code:  http.StatusInternalServerError,
				})
			}
			reqLogger.Info("request completed",
				slog.Int("status", ctx.Writer.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		}()

		ctx.Next()
	}
}

package http_common

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ZeNuW/filmorate/internal/logging"
	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/gin-gonic/gin"
)

const DateLayout = "2006-01-02"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// StatusOf maps domain errors to HTTP status codes.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyExists), errors.Is(err, model.ErrAlreadyFriends):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError logs err with the request logger and writes the error envelope.
func WriteError(ctx *gin.Context, summary string, err error) {
	status := StatusOf(err)
	logger := logging.FromContext(ctx.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error(summary, slog.String("error", err.Error()))
	} else {
		logger.Warn(summary, slog.String("error", err.Error()))
	}

	ctx.JSON(status, ErrorResponse{
		Error:   summary,
		Message: err.Error(),
		Code:    status,
	})
}

// BadRequest is used for malformed bodies and path parameters.
func BadRequest(ctx *gin.Context, summary string, err error) {
	WriteError(ctx, summary, fmt.Errorf("%w: %w", model.ErrInvalidArgument, err))
}

// ParamID parses a positive int64 path parameter.
func ParamID(ctx *gin.Context, name string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", model.ErrInvalidArgument, name, raw)
	}
	return id, nil
}

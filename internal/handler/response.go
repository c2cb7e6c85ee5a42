package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/cipherpipe-go/internal/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}

// RespondError writes a JSON error response with logging
func RespondError(c *gin.Context, err error) {
	var appErr *errors.Error
	if !stderrors.As(err, &appErr) {
		appErr = errors.NewInternalWithCause("internal server error", err)
	}

	if appErr.Cause != nil {
		log.Error().Err(appErr.Cause).Msg(appErr.Message)
	} else {
		log.Error().Msg(appErr.Message)
	}

	status := errors.ToHTTPStatus(err)
	c.JSON(status, APIResponse{
		Code: status,
		Msg:  err.Error(),
	})
}

// RespondSuccess writes a JSON success response
func RespondSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{
		Code: 0,
		Data: data,
	})
}

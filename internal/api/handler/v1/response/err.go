package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"msg"`

	// err carries the wrapped cause for logging, never for the client.
	err error
}

func (e *Err) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return e.Msg
}

func NewErr(statusCode int, msg string, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		Msg:        msg,
		err:        err,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err.Error(), err)
}

func ErrUnauthorized(msg string) *Err {
	return NewErr(http.StatusUnauthorized, msg, nil)
}

func ErrWrongCredentials(err error) *Err {
	return NewErr(http.StatusUnauthorized, "wrong credentials", err)
}

func ErrForbidden(msg string) *Err {
	return NewErr(http.StatusForbidden, msg, nil)
}

func ErrNotFound(resource, key string, value any) *Err {
	return NewErr(http.StatusNotFound, fmt.Sprintf("%v with %v %v is not found", resource, key, value), nil)
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err.Error(), err)
}

func ErrInternalServerError(err error) *Err {
	return NewErr(http.StatusInternalServerError, "internal server error", err)
}

// RenderErr logs the underlying cause with the request id and writes
// only the public message to the client.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.String("request_id", requestid.Get(ctx)),
			zap.Int("status", err.StatusCode),
			zap.Error(err.err),
		)
	} else {
		zap.L().Info("request rejected",
			zap.String("request_id", requestid.Get(ctx)),
			zap.Int("status", err.StatusCode),
			zap.String("msg", err.Msg),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

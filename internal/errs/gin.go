package errs

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

type GinErrorHandler struct {
	title   string
	context *gin.Context
}

func NewGinErrorHandler(c *gin.Context, title string) *GinErrorHandler {
	return &GinErrorHandler{title: title, context: c}
}

func (e *GinErrorHandler) PublicError(statusCode int, err error) {
	if e.context.Writer.Written() {
		return
	}
	e.context.JSON(statusCode, gin.H{"error": err.Error()})
}

func (e *GinErrorHandler) PrivateError(err error) {
	slog.Warn(e.title, "err", err)
	e.context.Error(err).SetType(gin.ErrorTypePrivate)
}

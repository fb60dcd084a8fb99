package delivery

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const InlineDisposition = "inline"

// AttachmentDisposition forces a download under the given filename.
func AttachmentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}

// Sink is where exactly one terminal response per request goes. Sent gates
// every terminal action so that a rate-limit short-circuit and a later
// file-discovery failure can never both answer the caller.
type Sink interface {
	Sent() bool
	Error(statusCode int, err error)
	Data(contentType, disposition string, data []byte)
	File(contentType, disposition, path string) error
}

type GinSink struct {
	context *gin.Context
}

func NewGinSink(c *gin.Context) *GinSink {
	return &GinSink{context: c}
}

func (s *GinSink) Sent() bool {
	return s.context.Writer.Written()
}

func (s *GinSink) Error(statusCode int, err error) {
	if s.Sent() {
		return
	}
	s.context.JSON(statusCode, gin.H{"error": err.Error()})
}

func (s *GinSink) Data(contentType, disposition string, data []byte) {
	if s.Sent() {
		return
	}
	s.context.Header("Content-Disposition", disposition)
	s.context.Data(http.StatusOK, contentType, data)
}

func (s *GinSink) File(contentType, disposition, path string) error {
	if s.Sent() {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	s.context.Header("Content-Type", contentType)
	s.context.Header("Content-Disposition", disposition)
	s.context.File(path)
	return nil
}

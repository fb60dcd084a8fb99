package stores

import (
	"github.com/clipforge/clipforge/internal/engine"
	"github.com/gin-gonic/gin"
)

const DownloadRequestKey = "download-request"

func SetDownloadRequest(c *gin.Context, req *engine.DownloadRequest) {
	c.Set(DownloadRequestKey, req)
}

func GetDownloadRequest(c *gin.Context) *engine.DownloadRequest {
	if value, ok := c.Get(DownloadRequestKey); ok && value != nil {
		req, ok := value.(*engine.DownloadRequest)
		if ok {
			return req
		}
	}

	panic("Download request not set, please check the usage of SetDownloadRequest")
}

package middlewares

import (
	"net/http"
	"strconv"

	"github.com/clipforge/clipforge/internal/engine"
	"github.com/clipforge/clipforge/internal/errs"
	"github.com/clipforge/clipforge/internal/stores"
	"github.com/gin-gonic/gin"
)

// DownloadRequestMiddleware parses and validates the download query before
// any subprocess work happens. Invalid requests are rejected here with no
// side effects.
func DownloadRequestMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handler := errs.NewGinErrorHandler(ctx, "Download request error")

		isAuto, _ := strconv.ParseBool(ctx.Query("isAuto"))
		kind, _ := engine.ParseKind(ctx.Query("type"))
		req := &engine.DownloadRequest{
			URL:         ctx.Query("url"),
			Kind:        kind,
			Format:      ctx.Query("format"),
			Quality:     ctx.Query("quality"),
			Language:    ctx.Query("lang"),
			AutoCaption: isAuto,
			TargetURL:   ctx.Query("targetUrl"),
		}

		if err := req.Validate(); err != nil {
			handler.PublicError(http.StatusBadRequest, err)
			ctx.Abort()
			return
		}

		stores.SetDownloadRequest(ctx, req)
		ctx.Next()
	}
}

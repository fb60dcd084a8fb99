package routes

import (
	"net/http"

	"github.com/clipforge/clipforge/internal/delivery"
	"github.com/clipforge/clipforge/internal/errs"
	"github.com/clipforge/clipforge/internal/stores"
	"github.com/gin-gonic/gin"
)

func downloadHandler(pipeline *delivery.Pipeline) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req := stores.GetDownloadRequest(ctx)
		pipeline.Deliver(ctx.Request.Context(), req, delivery.NewGinSink(ctx))
	}
}

func proxyHandler(pipeline *delivery.Pipeline) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		url := ctx.Query("url")
		if url == "" {
			errs.NewGinErrorHandler(ctx, "Proxy error").PublicError(http.StatusBadRequest, errs.ErrMissingURL)
			return
		}
		pipeline.DeliverImage(ctx.Request.Context(), url, delivery.NewGinSink(ctx))
	}
}

package routes

import (
	"net/http"

	"github.com/clipforge/clipforge/internal/catalog"
	"github.com/clipforge/clipforge/internal/delivery"
	"github.com/clipforge/clipforge/internal/errs"
	"github.com/gin-gonic/gin"
)

type infoRequest struct {
	URL string `json:"url"`
}

func infoHandler(pipeline *delivery.Pipeline) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handler := errs.NewGinErrorHandler(ctx, "Info error")

		var body infoRequest
		if err := ctx.ShouldBindJSON(&body); err != nil || body.URL == "" {
			handler.PublicError(http.StatusBadRequest, errs.ErrMissingURL)
			return
		}

		meta, err := pipeline.Engine.FetchMetadata(ctx.Request.Context(), body.URL)
		if err != nil {
			handler.PrivateError(err)
			handler.PublicError(http.StatusInternalServerError, errs.ErrMetadataFetch)
			return
		}

		ctx.JSON(http.StatusOK, catalog.Build(meta, body.URL))
	}
}

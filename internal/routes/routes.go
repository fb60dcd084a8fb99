package routes

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/clipforge/clipforge/internal/delivery"
	"github.com/clipforge/clipforge/internal/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func CreateMainRouter(pipeline *delivery.Pipeline) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.LogMiddleware())

	gzipMode, err := strconv.Atoi(os.Getenv("GZIP_MODE"))
	if err != nil {
		slog.Warn("Invalid value for GZIP_MODE environment variable", "err", err)
		gzipMode = 0
	}

	router.Use(gzip.Gzip(gzipMode))
	router.Use(cors.Default())

	router.GET("/", homeHandler)
	ApiRouter(router.Group("/api"), pipeline)

	return router
}

func ApiRouter(g *gin.RouterGroup, pipeline *delivery.Pipeline) {
	g.POST("/info", infoHandler(pipeline))
	g.GET("/proxy", proxyHandler(pipeline))

	download := g.Group("/download")
	download.Use(middlewares.DownloadRequestMiddleware())
	download.GET("", downloadHandler(pipeline))
}

func homeHandler(ctx *gin.Context) {
	ctx.String(http.StatusOK, "ClipForge Backend Ready")
}

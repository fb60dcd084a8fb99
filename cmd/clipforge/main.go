package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/delivery"
	"github.com/clipforge/clipforge/internal/engine"
	"github.com/clipforge/clipforge/internal/routes"
	"github.com/clipforge/clipforge/internal/temp"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("(warn) No .env file loaded:", err)
	}

	logLevel := slog.LevelDebug
	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
			fmt.Println("(warn) Invalid value for LOG_LEVEL environment variable")
		}
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel,
	})

	slog.SetDefault(slog.New(logHandler))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration error", "err", err)
		os.Exit(1)
	}
	slog.Info("Extraction engine resolved", "binary", cfg.EngineBinary, "ffmpeg", cfg.FFmpegPath)

	store, err := temp.NewStore(cfg.TempDir)
	if err != nil {
		slog.Error("Unable to create temp artifact store", "dir", cfg.TempDir, "err", err)
		os.Exit(1)
	}
	slog.Info("Temp artifact store ready", "dir", store.Dir())

	eng := engine.New(cfg.EngineBinary, cfg.FFmpegPath, cfg.JobTimeout)
	pipeline := delivery.NewPipeline(eng, store)
	router := routes.CreateMainRouter(pipeline)

	if cfg.TLS() {
		slog.Info("Starting HTTPS server", slog.String("addr", cfg.Addr), slog.String("cert", cfg.CertFile), slog.String("key", cfg.KeyFile))
		err = http.ListenAndServeTLS(cfg.Addr, cfg.CertFile, cfg.KeyFile, router)
	} else {
		slog.Info("Starting HTTP server", slog.String("addr", cfg.Addr))
		err = http.ListenAndServe(cfg.Addr, router)
	}

	if err != nil {
		slog.Error("Server terminated", "err", err)
		os.Exit(1)
	}
}

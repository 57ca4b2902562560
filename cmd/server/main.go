package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studyshare/internal/config"
	mcpserver "studyshare/internal/mcp"
	"studyshare/internal/notes"
	"studyshare/internal/session"
	"studyshare/internal/web"

	"github.com/mark3labs/mcp-go/server"
)

//go:embed static
var staticFS embed.FS

func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	// Config
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	port := strconv.Itoa(cfg.Server.Port)

	// Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	// Catalog
	noteSvc, err := notes.Open(cfg.Catalog.SeedFile)
	if err != nil {
		log.Fatalf("failed to open catalog: %v", err)
	}
	logger.Info("catalog loaded", "notes", len(noteSvc.All()), "seed", cfg.Catalog.SeedFile)

	// Sessions
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	sessions := session.NewStore(noteSvc, cfg.Session.IdleTimeout)
	if cfg.Session.IdleTimeout > 0 {
		go sessions.Run(ctx, cfg.Session.IdleTimeout/2)
	}

	// Wire dependencies
	noteHandler := notes.NewHandler(noteSvc, logger)
	webHandler := web.NewHandler(noteSvc, sessions, logger)
	mcpSrv := mcpserver.NewServer(noteSvc)

	// HTTP router
	mux := http.NewServeMux()

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatalf("failed to get static fs: %v", err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	noteHandler.Register(mux)
	webHandler.Register(mux)

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
	mux.Handle("POST /mcp", mcpHTTP)
	mux.Handle("GET /mcp", mcpHTTP)
	mux.Handle("DELETE /mcp", mcpHTTP)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		stop()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "port", port)
	logger.Info("endpoints available",
		"web", "http://localhost:"+port,
		"api", "http://localhost:"+port+"/api",
		"mcp", "http://localhost:"+port+"/mcp",
	)

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	logger.Info("server stopped")
}

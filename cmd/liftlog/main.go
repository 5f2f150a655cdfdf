package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/demo"
	"github.com/claude/liftlog/internal/ingest"
	liftlogmcp "github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/metrics"
	"github.com/claude/liftlog/internal/server"
	"github.com/claude/liftlog/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	log.Info("liftlog starting", "version", Version)

	store := storage.New()
	reg := metrics.SetupPrometheus()
	m := metrics.NewManager("liftlog", "server", reg)
	provider := ingest.NewProvider(store, m, log)

	// Create server
	srv := server.New(store, provider, m, log)
	srv.SetMaxUpload(cfg.Server.MaxUploadBytes())
	srv.SetMetrics(reg)
	srv.SetMCP(mcpserver.NewStreamableHTTPServer(liftlogmcp.New(store, Version, log)))

	if cfg.Server.StaticDir != "" {
		srv.SetFrontend(os.DirFS(cfg.Server.StaticDir))
		log.Info("serving frontend", "dir", cfg.Server.StaticDir)
	}

	ctx := context.Background()
	if err := preload(ctx, provider, cfg.Dataset, log); err != nil {
		log.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}

	// Start server: tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		lc, err := tsServer.LocalClient()
		if err != nil {
			log.Error("tsnet local client failed", "error", err)
			os.Exit(1)
		}
		srv.SetTailscale(lc)

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// preload loads the configured startup dataset, if any.
func preload(ctx context.Context, p *ingest.Provider, ds config.DatasetConfig, log *slog.Logger) error {
	switch {
	case ds.Path != "":
		f, err := os.Open(ds.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		result, err := p.Ingest(ctx, f, ds.Path)
		if err != nil {
			return err
		}
		log.Info("startup dataset loaded", "path", ds.Path, "sets", result.SetsAccepted)
	case ds.Demo:
		if _, err := p.IngestRows(ctx, demo.Rows(1, time.Now()), demo.Source); err != nil {
			return err
		}
		log.Info("demo dataset loaded")
	}
	return nil
}

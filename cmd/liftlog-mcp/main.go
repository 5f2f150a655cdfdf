package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/liftlog/internal/demo"
	"github.com/claude/liftlog/internal/ingest"
	liftlogmcp "github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	filePath := flag.String("file", "", "serve a local Strong CSV export")
	useDemo := flag.Bool("demo", false, "serve generated demo data")
	serverURL := flag.String("server", "", "proxy queries to a running liftlog server")
	flag.Parse()

	// stdout carries the protocol
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds liftlogmcp.DataSource
	switch {
	case *serverURL != "":
		ds = liftlogmcp.NewHTTPClient(*serverURL)
		log.Info("proxying to server", "url", *serverURL)
	case *filePath != "" || *useDemo:
		store, err := loadLocal(*filePath, *useDemo, log)
		if err != nil {
			log.Error("failed to load dataset", "error", err)
			os.Exit(1)
		}
		ds = store
	default:
		fmt.Fprintf(os.Stderr, "Usage: liftlog-mcp -file <export.csv> | -demo | -server <URL>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := mcpserver.ServeStdio(liftlogmcp.New(ds, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func loadLocal(path string, useDemo bool, log *slog.Logger) (*storage.Store, error) {
	store := storage.New()
	provider := ingest.NewProvider(store, nil, log)
	ctx := context.Background()

	if path == "" && useDemo {
		_, err := provider.IngestRows(ctx, demo.Rows(1, time.Now()), demo.Source)
		return store, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if _, err := provider.Ingest(ctx, f, path); err != nil {
		return nil, err
	}
	return store, nil
}

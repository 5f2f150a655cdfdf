package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/claude/liftlog/internal/ingest"
	"github.com/claude/liftlog/internal/upload"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "liftlog server URL (e.g. https://liftlog.tail1234.ts.net)")
	filePath := flag.String("file", "", "path to a Strong CSV export")
	useDemo := flag.Bool("demo", false, "ask the server to load demo data instead of a file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftlog-upload", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *serverURL == "" || (*filePath == "" && !*useDemo) {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-upload -server <URL> -file <export.csv> | -demo\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := upload.NewClient(*serverURL)

	var result *ingest.Result
	var err error
	if *filePath != "" {
		log.Info("uploading export", "file", *filePath, "server", *serverURL)
		result, err = client.SendCSV(ctx, *filePath)
	} else {
		log.Info("loading demo data", "server", *serverURL)
		result, err = client.LoadDemo(ctx)
	}
	if err != nil {
		log.Error("upload failed", "error", err)
		os.Exit(1)
	}

	printResult(result)
	log.Info("upload complete", "dataset", result.DatasetID)
}

func printResult(r *ingest.Result) {
	fmt.Println()
	fmt.Println("=== Upload Summary ===")
	fmt.Printf("  Source:           %s\n", r.Source)
	fmt.Printf("  Variant:          %s\n", r.Variant)
	fmt.Printf("  Rows received:    %d\n", r.RowsReceived)
	fmt.Printf("  Sets accepted:    %d\n", r.SetsAccepted)
	fmt.Printf("  Rows rejected:    %d\n", r.RowsRejected)
	fmt.Printf("  Exercises:        %d\n", r.Exercises)
	fmt.Printf("  Workouts:         %d\n", r.Workouts)

	if len(r.RejectedReasons) > 0 {
		reasons := make([]string, 0, len(r.RejectedReasons))
		for reason := range r.RejectedReasons {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		fmt.Printf("\n  Rejected rows by reason:\n")
		for _, reason := range reasons {
			fmt.Printf("    - %s: %d\n", reason, r.RejectedReasons[reason])
		}
	}
	if r.Message != "" {
		fmt.Printf("\n  %s\n", r.Message)
	}
	fmt.Println()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/claude/liftlog/internal/analysis"
	"github.com/claude/liftlog/internal/demo"
	"github.com/claude/liftlog/internal/ingest/strong"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

func main() {
	filePath := flag.String("file", "", "path to a Strong CSV export")
	useDemo := flag.Bool("demo", false, "report on generated demo data")
	exercise := flag.String("exercise", "", "show progression and records for one exercise")
	top := flag.Int("top", 15, "number of exercises and workouts listed")
	verbose := flag.Bool("v", false, "log rejected rows")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var rows []models.RawRow
	switch {
	case *filePath != "":
		f, err := os.Open(*filePath)
		if err != nil {
			log.Error("failed to open export", "error", err)
			os.Exit(1)
		}
		rows, err = strong.ReadRows(f)
		f.Close()
		if err != nil {
			log.Error("failed to parse export", "error", err)
			os.Exit(1)
		}
	case *useDemo:
		rows = demo.Rows(1, time.Now())
	default:
		fmt.Fprintf(os.Stderr, "Usage: liftlog-report -file <export.csv> | -demo [-exercise NAME]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	snap := analysis.Build(rows, log)
	p := message.NewPrinter(language.English)

	if *exercise != "" {
		store := storage.New()
		store.Replace(snap, *filePath)
		agg, err := store.GetExercise(context.Background(), *exercise)
		if err != nil {
			log.Error("exercise lookup failed", "error", err)
			os.Exit(1)
		}
		printExercise(p, *agg)
		return
	}
	printSummary(p, snap, *top)
}

func printSummary(p *message.Printer, snap *models.Snapshot, top int) {
	first, last := analysis.DateRange(snap.Workouts)

	p.Println()
	p.Println("=== Training Summary ===")
	p.Printf("  Schema:           %s\n", snap.Variant)
	p.Printf("  Rows received:    %d\n", snap.RowsReceived)
	p.Printf("  Sets:             %d\n", len(snap.Sets))
	p.Printf("  Rows rejected:    %d\n", snap.RowsRejected())
	p.Printf("  Exercises:        %d\n", len(snap.Exercises))
	p.Printf("  Workouts:         %d\n", len(snap.Workouts))
	if first != "" {
		p.Printf("  Period:           %s to %s\n", first, last)
	}
	printRejected(p, snap.Rejected)

	p.Println()
	p.Println("  Exercises (most recent first):")
	for i, e := range analysis.ListExercises(snap.Exercises, "") {
		if i == top {
			break
		}
		p.Printf("    %-32s %s  %4d sets  %10.1f %-3s  best %6.1f %s\n",
			e.Name, e.LastUsed, e.SetCount, e.TotalVolume, e.Unit, e.MaxWeight, e.Unit)
	}

	p.Println()
	p.Println("  Workouts (newest first):")
	for i, w := range analysis.ListWorkouts(snap.Workouts, "", "") {
		if i == top {
			break
		}
		p.Printf("    %s  %-24s %2d exercises  %3d sets  %10.1f %-3s  %s\n",
			w.Date, w.Name, w.ExerciseCount, w.SetCount, w.TotalVolume, w.Unit, w.Duration)
	}
	p.Println()
}

func printRejected(p *message.Printer, rejected map[string]int) {
	reasons := make([]string, 0, len(rejected))
	for reason, n := range rejected {
		if n > 0 {
			reasons = append(reasons, reason)
		}
	}
	if len(reasons) == 0 {
		return
	}
	sort.Strings(reasons)
	p.Printf("\n  Rejected rows by reason:\n")
	for _, reason := range reasons {
		p.Printf("    - %s: %d\n", reason, rejected[reason])
	}
}

func printExercise(p *message.Printer, agg models.ExerciseAggregate) {
	rec := analysis.RecordsOf(agg)
	unit := analysis.UnitOf(agg.Sets)

	p.Println()
	p.Printf("=== %s ===\n", agg.Name)
	p.Printf("  Last used:        %s\n", agg.LastUsed)
	p.Printf("  Sets:             %d\n", len(agg.Sets))
	p.Printf("  Total reps:       %d\n", agg.TotalReps)
	p.Printf("  Total volume:     %.1f %s\n", agg.TotalVolume, unit)

	p.Println()
	p.Println("  Records:")
	printRecord(p, "Heaviest weight", rec.Weight, unit)
	printRecord(p, "Best set volume", rec.Volume, unit)
	printRecord(p, "Estimated 1RM", rec.OneRepMax, unit)

	p.Println()
	p.Println("  Progression:")
	for _, pt := range analysis.Progression(agg) {
		p.Printf("    %s  top %6.1f %s x %-2d  %2d sets  %9.1f %s  e1RM %6.1f\n",
			pt.Date, pt.TopWeight, unit, pt.TopWeightReps, pt.Sets, pt.Volume, unit, pt.Best1RM)
	}
	p.Println()
}

func printRecord(p *message.Printer, label string, r *analysis.Record, unit string) {
	if r == nil {
		p.Printf("    %-18s -\n", label+":")
		return
	}
	p.Printf("    %-18s %.1f (%.1f %s x %d on %s)\n", label+":", r.Value, r.Weight, unit, r.Reps, r.Date)
}

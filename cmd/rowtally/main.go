package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvickers/rowtally/internal/config"
	"github.com/mvickers/rowtally/internal/dataset"
	"github.com/mvickers/rowtally/internal/session"
	"github.com/mvickers/rowtally/internal/store"
	"github.com/mvickers/rowtally/internal/tui"
)

func main() {
	var (
		file      = flag.String("file", "", "CSV file to label (omit to pick one interactively)")
		columns   = flag.String("columns", "", "comma-separated columns to present (default: all)")
		each      = flag.String("each", "", "comma-separated per-column measure labels")
		overall   = flag.String("overall", "", "comma-separated whole-record measure labels")
		sampleN   = flag.Int("sample", 0, "label a random sample of this many rows")
		seed      = flag.Int64("seed", -1, "seed for -sample (reproducible draw when >= 0)")
		out       = flag.String("out", "", "measurement export path (default from config)")
		storePath = flag.String("store", "", "sqlite path for persisting measurements (default from config)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *out != "" {
		cfg.Export.Path = *out
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}

	params := tui.Params{
		Columns: splitList(*columns),
		Measures: session.Measures{
			Overall: splitList(*overall),
			Each:    splitList(*each),
		},
		SampleN: *sampleN,
		Seed:    *seed,
		Seeded:  *seed >= 0,
	}

	ctx := context.Background()

	var st *store.Store
	if cfg.Store.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
			log.Fatalf("mkdir store dir: %v", err)
		}
		db, err := store.Open(cfg.Store.Path)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer db.Close()
		if err := store.Migrate(db); err != nil {
			log.Fatalf("migrate store: %v", err)
		}
		st = store.New(db)
	}

	var app tui.App
	if *file != "" {
		src, err := dataset.OpenCSV(*file)
		if err != nil {
			log.Fatalf("load source: %v", err)
		}
		app, err = tui.NewWithSource(ctx, cfg, params, st, src, filepath.Base(*file))
		if err != nil {
			log.Fatalf("session: %v", err)
		}
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			log.Fatalf("getwd: %v", err)
		}
		app = tui.New(ctx, cfg, params, st, cwd)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	finalApp, ok := final.(tui.App)
	if !ok || finalApp.Session() == nil {
		return
	}

	measurements := finalApp.Session().Export()
	if len(measurements) == 0 {
		fmt.Println("no measurements recorded")
		return
	}

	if st != nil {
		if err := st.SaveRun(ctx, finalApp.Run(), measurements); err != nil {
			log.Printf("warn: final store snapshot failed: %v", err)
		}
	}
	if err := session.ExportCSV(cfg.Export.Path, measurements); err != nil {
		log.Fatalf("export: %v", err)
	}
	fmt.Printf("wrote %d measurements to %s\n", len(measurements), cfg.Export.Path)
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

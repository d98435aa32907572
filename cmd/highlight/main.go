package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/inklight/pdfmark/internal/annotate"
	"github.com/inklight/pdfmark/internal/config"
	"github.com/inklight/pdfmark/internal/llm"
	"github.com/inklight/pdfmark/internal/pdfdoc"
	"github.com/inklight/pdfmark/internal/pipeline"
)

// highlight runs the full pipeline once over a single PDF and writes
// the annotation set (and optionally the summary report) to disk.
func main() {
	var (
		in          = flag.String("in", "", "input PDF file (required)")
		annotations = flag.String("annotations", "", "output annotation JSON (default <in>-annotations.json)")
		reportOut   = flag.String("report", "", "output DOCX report (omit to skip)")
		baseURL     = flag.String("base-url", envOr("LLM_BASE_URL", "https://api.openai.com/v1"), "chat-completion endpoint base URL")
		model       = flag.String("model", envOr("LLM_MODEL", "gpt-4o-mini"), "model name")
		chunkSize   = flag.Int("chunk-size", 60, "sentences per model call")
		tolerance   = flag.Float64("line-tolerance", 2.0, "line clustering tolerance in points")
		margin      = flag.Float64("margin", 1.0, "rectangle expansion in points")
		color       = flag.String("color", "1,0.85,0.3", "highlight color as r,g,b in [0,1]")
		concurrency = flag.Int("concurrency", 4, "concurrent model calls")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: highlight -in document.pdf [-annotations out.json] [-report out.docx]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *annotations == "" {
		base := strings.TrimSuffix(*in, filepath.Ext(*in))
		*annotations = base + "-annotations.json"
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, log, options{
		in:          *in,
		annotations: *annotations,
		reportOut:   *reportOut,
		baseURL:     *baseURL,
		apiKey:      os.Getenv("LLM_API_KEY"),
		model:       *model,
		chunkSize:   *chunkSize,
		tolerance:   *tolerance,
		margin:      *margin,
		color:       *color,
		concurrency: *concurrency,
	}); err != nil {
		log.Error("highlight failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	in          string
	annotations string
	reportOut   string
	baseURL     string
	apiKey      string
	model       string
	chunkSize   int
	tolerance   float64
	margin      float64
	color       string
	concurrency int
}

func run(ctx context.Context, log *slog.Logger, opts options) error {
	start := time.Now()

	pages, err := pdfdoc.ExtractWordsFile(opts.in)
	if err != nil {
		return fmt.Errorf("extract %s: %w", opts.in, err)
	}
	log.Info("extracted", "file", opts.in, "pages", len(pages))

	client := llm.NewClient(opts.baseURL, opts.apiKey, opts.model)
	defer client.Close()

	writer := annotate.NewWriter(opts.tolerance, opts.margin, config.ParseColor(opts.color))
	worker := pipeline.NewWorker(client, writer, log, opts.chunkSize, opts.concurrency)

	job := &pipeline.Job{
		ID:       pipeline.NewJobID(),
		Status:   pipeline.StatusQueued,
		Filename: filepath.Base(opts.in),
	}
	worker.Run(ctx, job, pages)

	snap := job.Snapshot()
	for _, e := range snap.Progress.Errors {
		log.Warn("pipeline error", "error", e)
	}
	if snap.Status == pipeline.StatusFailed {
		return fmt.Errorf("pipeline failed")
	}

	set := job.Annotations()
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal annotations: %w", err)
	}
	if err := os.WriteFile(opts.annotations, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.annotations, err)
	}
	log.Info("wrote annotations",
		"path", opts.annotations,
		"groups", snap.Progress.Groups,
		"rects", len(set.Rects),
		"notes", len(set.Notes),
	)

	if opts.reportOut != "" {
		docx := job.ReportDocx()
		if docx == nil {
			log.Warn("no report produced, skipping", "path", opts.reportOut)
		} else if err := os.WriteFile(opts.reportOut, docx, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.reportOut, err)
		} else {
			log.Info("wrote report", "path", opts.reportOut)
		}
	}

	log.Info("done", "status", snap.Status, "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

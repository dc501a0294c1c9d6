package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/ingestion"
	"github.com/poiesic/yojana/metrics"
	"github.com/poiesic/yojana/pipeline"
	"github.com/poiesic/yojana/reembed"
	"github.com/poiesic/yojana/server"
)

// requestGrace is added to the pipeline timeout for the HTTP request bound so
// a timed-out query can still write its error response.
const requestGrace = 5 * time.Second

func serveCommand(c *cli.Context) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	if c.IsSet("addr") {
		cfg.Server.Addr = c.String("addr")
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := openApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer app.Close()

	var pipelineOpts []pipeline.Option
	var serverOpts []server.Option
	if cfg.Metrics.Enabled {
		m := metrics.New(prometheus.DefaultRegisterer)
		pipelineOpts = append(pipelineOpts, pipeline.WithMonitor(m))
		serverOpts = append(serverOpts, server.WithMetrics(m, cfg.Metrics.Path))
	}
	if cfg.Pipeline.Timeout > 0 {
		serverOpts = append(serverOpts, server.WithRequestTimeout(cfg.Pipeline.Timeout+requestGrace))
	}

	p, err := app.NewPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	srv, err := server.New(p, serverOpts...)
	if err != nil {
		return err
	}

	return srv.Run(ctx, server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
}

type queryOutput struct {
	Schemes  []core.LocalizedScheme `json:"schemes"`
	Language core.Language          `json:"language"`
	Result   string                 `json:"result"`
	Error    string                 `json:"error,omitempty"`
}

func queryCommand(c *cli.Context) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("query text is required")
	}

	var hint core.Language
	if c.IsSet("language") {
		hint, err = core.ParseLanguage(c.String("language"))
		if err != nil {
			return err
		}
	}

	app, err := openApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer app.Close()

	p, err := app.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	result := p.Query(contextFrom(c), pipeline.Request{Query: text, Language: hint})
	out := queryOutput{
		Schemes:  result.Schemes,
		Language: result.Language,
		Result:   result.Kind.String(),
	}
	if result.Err != nil {
		out.Error = result.Err.Error()
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return err
	}
	if result.Err != nil {
		return fmt.Errorf("query failed: %w", result.Err)
	}
	return nil
}

func seedCommand(c *cli.Context) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return errors.New("exactly one corpus file is required")
	}
	if c.IsSet("batch-size") {
		cfg.Seed.BatchSize = c.Int("batch-size")
	}
	if c.IsSet("workers") {
		cfg.Seed.Workers = c.Int("workers")
	}

	schemes, err := ingestion.LoadFile(c.Args().First())
	if err != nil {
		return err
	}

	app, err := openApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer app.Close()

	seeder, err := app.NewIngestionPipeline(
		ingestion.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
	)
	if err != nil {
		return fmt.Errorf("failed to create seeder: %w", err)
	}
	defer seeder.Release()

	summary, err := seeder.Ingest(contextFrom(c), schemes)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Seeded %d schemes (%d duplicates merged), corpus now holds %d schemes of %d dimensions\n",
		summary.Stored, summary.Duplicates, summary.Total, summary.Dimensions)
	return nil
}

func reembedCommand(c *cli.Context) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	if c.IsSet("embedding-host") {
		cfg.AI.EmbeddingHost = c.String("embedding-host")
	}
	if c.IsSet("embedding-model") {
		cfg.AI.EmbeddingModel = c.String("embedding-model")
	}

	app, err := openApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer app.Close()

	r, err := app.NewReembedder(&reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}, c.App.ErrWriter)
	if err != nil {
		return fmt.Errorf("failed to create reembedder: %w", err)
	}

	if err := r.Run(contextFrom(c)); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}
	return nil
}

func contextFrom(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

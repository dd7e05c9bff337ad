package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphgen/config"
	"github.com/katalvlaran/graphgen/graphmodel"
	"github.com/katalvlaran/graphgen/ingest"
	"github.com/katalvlaran/graphgen/ingestmodel"
	"github.com/katalvlaran/graphgen/writer"
)

var (
	configPath    string
	scaleOverride float64
	seedOverride  int64
	workers       int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run one generation pass from a configuration file",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file (required)")
	generateCmd.Flags().Float64Var(&scaleOverride, "scale", 0, "override the configured SCALE")
	generateCmd.Flags().Int64Var(&seedOverride, "seed", 0, "override the configured RNG_SEED")
	generateCmd.Flags().IntVar(&workers, "workers", 1, "goroutines per edge color during generation")
	_ = generateCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, logger)
	if err != nil {
		return err
	}
	if scaleOverride > 0 {
		cfg.Scale = scaleOverride
	}
	if seedOverride != 0 {
		cfg.RNGSeed = seedOverride
	}

	model := ingestmodel.New(ingestmodel.WithLogger(logger))

	reader := ingest.NewTSVReader(logger)
	for _, path := range cfg.NodeFiles {
		read, skipped, err := reader.ReadNodes(path, model)
		if err != nil {
			return err
		}
		logger.Info("read node file", "file", path, "records", read, "skipped", skipped)
	}
	for _, path := range cfg.EdgeFiles {
		read, skipped, err := reader.ReadEdges(path, model)
		if err != nil {
			return err
		}
		logger.Info("read edge file", "file", path, "records", read, "skipped", skipped)
	}
	if err := model.Preprocess(); err != nil {
		return err
	}

	gm, err := graphmodel.NewGraphModel(model, cfg.Scale,
		graphmodel.WithSeed(cfg.RNGSeed),
		graphmodel.WithWorkers(workers),
	)
	if err != nil {
		return err
	}

	w, closeFn, err := buildWriter(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	logger.Info("starting generation",
		"nodes", gm.NodeCount(),
		"scale", cfg.Scale,
		"seed", cfg.RNGSeed,
		"workers", workers,
	)

	if err := gm.Generate(context.Background(), w); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("generation complete")
	return nil
}

func buildWriter(cfg *config.Config) (graphmodel.Writer, func(), error) {
	switch cfg.WriterType {
	case config.WriterBenchmark:
		bw := writer.NewBenchmarkWriter(0, 0)
		bw.StartTimer()
		return bw, func() {
			elapsed := bw.StopTimer()
			stats := bw.Stats(elapsed)
			logger.Info("benchmark complete",
				"nodes", stats.Nodes,
				"edges", stats.Edges,
				"approx_bytes", stats.ApproxBytes,
				"approx_gb_per_s", stats.ApproxGBPerSecond,
			)
		}, nil
	default:
		tw, err := writer.NewTSVWriter(cfg.OutputNodeFile, cfg.OutputEdgeFile)
		if err != nil {
			return nil, func() {}, err
		}
		return tw, func() { _ = tw.Close() }, nil
	}
}

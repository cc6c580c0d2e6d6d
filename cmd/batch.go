package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/coverart-cli/internal/manifest"
	"github.com/AnyUserName/coverart-cli/internal/pipeline"
	"github.com/AnyUserName/coverart-cli/internal/render"
)

var (
	batchOutDir  string
	batchWidth   int
	batchHeight  int
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <slugs_file>",
	Short: "Generate covers for a list of slugs and write a manifest",
	Long: `Reads one slug per line (blank lines and # comments skipped),
renders each cover in parallel, and writes content-addressed files
named <slug>.<w>x<h>.<hash>.png plus coverart.manifest.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./covers", "output directory")
	batchCmd.Flags().IntVar(&batchWidth, "width", render.DefaultWidth, "image width in pixels")
	batchCmd.Flags().IntVar(&batchHeight, "height", render.DefaultHeight, "image height in pixels")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	start := time.Now()

	slugs, err := pipeline.ReadSlugList(args[0])
	if err != nil {
		return err
	}
	if len(slugs) == 0 {
		return fmt.Errorf("no slugs found in %s", args[0])
	}

	absOut, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	logger.Debug("batch start", "slugs", len(slugs), "out", absOut)

	p := pipeline.New(pipeline.Config{
		Slugs:     slugs,
		OutputDir: absOut,
		Width:     batchWidth,
		Height:    batchHeight,
		Workers:   batchWorkers,
		Logger:    logger,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOut, "coverart.manifest.json")
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("  Covers:    %d\n", m.Stats.TotalCovers)
	if m.Stats.Failed > 0 {
		fmt.Printf("  Failed:    %d\n", m.Stats.Failed)
	}
	fmt.Printf("  Size:      %s\n", formatBytes(m.Stats.TotalBytes))
	fmt.Printf("  Dims:      %dx%d\n", m.Width, m.Height)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:   %d\n", m.BuildInfo.Workers)
	}
	fmt.Printf("  Time:      %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Manifest:  coverart.manifest.json\n")
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

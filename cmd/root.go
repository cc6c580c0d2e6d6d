package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	logger  *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "coverart",
	Short: "Deterministic placeholder cover generator",
	Long: `coverart renders decorative cover images from short text slugs:
a seeded color gradient, soft translucent shapes, film grain and a
vignette. The same slug always produces the same image, so articles
and media without real artwork get stable placeholder covers with no
network access or bundled assets.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"coverart %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
	cobra.OnInitialize(func() {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		})
	})
}

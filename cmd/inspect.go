package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/coverart-cli/internal/palette"
	"github.com/AnyUserName/coverart-cli/internal/seed"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <slug>",
	Short: "Show the seed and palette selection for a slug without rendering",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	slug := args[0]
	s := seed.FromSlug(slug)
	sel := palette.Pick(s)

	fmt.Printf("  Slug:    %s\n", slug)
	fmt.Printf("  Seed:    0x%08x (%d)\n", s, s)
	fmt.Printf("  Top:     %s  %s\n", palette.Hex(sel.C1), palette.Name(sel.C1))
	fmt.Printf("  Bottom:  %s  %s\n", palette.Hex(sel.C2), palette.Name(sel.C2))
	fmt.Printf("  Accent:  %s  %s\n", palette.Hex(sel.Accent), palette.Name(sel.Accent))
	return nil
}

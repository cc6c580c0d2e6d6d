package cmd

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/coverart-cli/internal/hasher"
	"github.com/AnyUserName/coverart-cli/internal/manifest"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <manifest_path>",
	Short: "Verify a coverart manifest and the files it references",
	Long: `Checks the manifest schema, that every referenced PNG exists with
the recorded size and content hash, and that each file decodes to the
recorded dimensions.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	baseDir := filepath.Dir(manifestPath)
	errors := verifyManifest(&m, baseDir)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d covers — all files present and intact\n", m.Stats.TotalCovers)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("verification failed with %d errors", len(errors))
}

func verifyManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}
	if m.Width <= 0 || m.Height <= 0 {
		errs = append(errs, fmt.Sprintf("invalid dimensions %dx%d", m.Width, m.Height))
	}

	for slug, c := range m.Covers {
		if c.Path == "" {
			errs = append(errs, fmt.Sprintf("cover %q: missing path", slug))
			continue
		}
		if c.Hash == "" {
			errs = append(errs, fmt.Sprintf("cover %q: missing hash", slug))
		}

		fullPath := filepath.Join(baseDir, c.Path)
		info, err := os.Stat(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("cover %q: file not found: %s", slug, c.Path))
			continue
		}
		if c.Size > 0 && info.Size() != c.Size {
			errs = append(errs, fmt.Sprintf("cover %q: size mismatch: manifest=%d, disk=%d",
				slug, c.Size, info.Size()))
		}

		if err := verifyCover(fullPath, c, m.Width, m.Height, slug, &errs); err != nil {
			errs = append(errs, fmt.Sprintf("cover %q: %v", slug, err))
		}
	}

	if m.Stats.TotalCovers != len(m.Covers) {
		errs = append(errs, fmt.Sprintf("stats.total_covers mismatch: %d != %d",
			m.Stats.TotalCovers, len(m.Covers)))
	}

	return errs
}

// verifyCover checks one file's content hash and decoded dimensions.
func verifyCover(path string, c manifest.Cover, w, h int, slug string, errs *[]string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	hash, err := hasher.ContentHashReader(f, len(c.Hash))
	if err != nil {
		return fmt.Errorf("hash: %w", err)
	}
	if c.Hash != "" && hash != c.Hash {
		*errs = append(*errs, fmt.Sprintf("cover %q: hash mismatch: manifest=%s, disk=%s",
			slug, c.Hash, hash))
	}

	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if cfg.Width != w || cfg.Height != h {
		*errs = append(*errs, fmt.Sprintf("cover %q: dimension mismatch: manifest=%dx%d, file=%dx%d",
			slug, w, h, cfg.Width, cfg.Height))
	}
	return nil
}

package manifest

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest for the given cover dimensions.
func New(width, height int) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Width:       width,
		Height:      height,
		Covers:      make(map[string]Cover),
	}
}

// ComputeStats recalculates aggregate statistics from covers. The
// failed count is set by the pipeline, not derived here.
func (m *Manifest) ComputeStats() {
	failed := m.Stats.Failed
	var s Stats
	s.TotalCovers = len(m.Covers)
	for _, c := range m.Covers {
		s.TotalBytes += c.Size
	}
	s.Failed = failed
	m.Stats = s
}

// WriteJSON serializes the manifest to an indented JSON file.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

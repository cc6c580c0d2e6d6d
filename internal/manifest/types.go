package manifest

// Manifest is the record of one batch generation run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Covers      map[string]Cover `json:"covers"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures run-time parameters for diagnostics.
type BuildInfo struct {
	Workers int `json:"workers"`
}

// Cover describes one generated cover image, keyed by slug.
type Cover struct {
	Seed     uint32   `json:"seed"`
	Colors   Colors   `json:"colors"`
	AvgColor [3]uint8 `json:"avg_color"` // [R,G,B] 0-255 of the final image
	Path     string   `json:"path"`      // relative to the manifest directory
	Size     int64    `json:"size"`      // bytes on disk
	Hash     string   `json:"hash"`      // 16 hex chars of xxhash64
}

// Colors records the palette selection as #rrggbb strings.
type Colors struct {
	Background [2]string `json:"background"` // gradient top, bottom
	Accent     string    `json:"accent"`
}

// Stats aggregates run metrics.
type Stats struct {
	TotalCovers int   `json:"total_covers"`
	TotalBytes  int64 `json:"total_bytes"`
	Failed      int   `json:"failed,omitempty"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

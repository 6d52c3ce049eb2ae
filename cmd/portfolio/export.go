package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"gansputra.dev/internal/generation"
	"gansputra.dev/internal/models"
	"gansputra.dev/internal/services"
)

var minimum, maximum int = 10000, 99999

var (
	exportSeed   uint64
	exportFrames int
)

// Viewports the star field frames are rendered for
var exportViewports = []struct {
	Name          string
	Width, Height float64
}{
	{"mobile", 390, 844},
	{"desktop", 1440, 900},
}

// exportCmd writes JSON snapshots of the content for static hosting
var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write JSON snapshots of the site content",
	Long: `Writes the loaded content, a seeded card order and a run of star field
frames as JSON files, so the page can be served from a static host.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	outputDir := args[0]
	seed := exportSeed
	if seed == 0 {
		seed = uint64(rand.IntN(maximum-minimum+1) + minimum)
	}

	// Ensure output directories exist
	frameDir := filepath.Join(outputDir, "starfield")
	if err := os.MkdirAll(frameDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	projects := services.NewProjectService(cfg.Projects)
	snapshots := map[string]any{
		"site.json":     cfg.Site,
		"amvs.json":     cfg.AMVs,
		"gfx.json":      cfg.GFX,
		"projects.json": models.ProjectList{Projects: projects.Shuffled(projects.GetAll(), seed)},
		"social.json":   cfg.Social,
		"playlist.json": cfg.Playlist,
		"sections.json": models.Sections,
	}
	for name, v := range snapshots {
		if err := writeJSON(filepath.Join(outputDir, name), v); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", name)
	}

	// One frame per 100ms, the same cadence the page polls at
	for _, vp := range exportViewports {
		field := generation.NewStarField(vp.Width, vp.Height, seed)
		for i := 0; i < exportFrames; i++ {
			frame := field.Render(time.Duration(i)*100*time.Millisecond, 0)
			filename := fmt.Sprintf("%s_%03d.json", vp.Name, i)
			if err := writeJSON(filepath.Join(frameDir, filename), frame); err != nil {
				return err
			}
		}
		fmt.Printf("Generated %d %s frames (%d stars)\n", exportFrames, vp.Name, field.Len())
	}

	fmt.Printf("Done! (seed %d)\n", seed)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

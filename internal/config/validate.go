package config

import (
	"errors"
	"fmt"
)

// ErrEmptyPlaylist is returned when playlist.yaml has no tracks
var ErrEmptyPlaylist = errors.New("playlist has no tracks")

func (c *Config) validate() error {
	var errs []error

	amvIDs := make([]string, len(c.AMVs.AMVs))
	for i, a := range c.AMVs.AMVs {
		amvIDs[i] = a.ID
	}
	errs = append(errs, checkIDs("amvs.yaml", amvIDs))

	gfxIDs := make([]string, len(c.GFX.Designs))
	for i, g := range c.GFX.Designs {
		gfxIDs[i] = g.ID
	}
	errs = append(errs, checkIDs("gfx.yaml", gfxIDs))

	projectIDs := make([]string, len(c.Projects.Projects))
	for i, p := range c.Projects.Projects {
		projectIDs[i] = p.ID
		if len(p.Images()) == 0 {
			errs = append(errs, fmt.Errorf("projects.yaml: project %q has no preview image or gallery", p.ID))
		}
	}
	errs = append(errs, checkIDs("projects.yaml", projectIDs))

	if len(c.Playlist.Tracks) == 0 {
		errs = append(errs, fmt.Errorf("playlist.yaml: %w", ErrEmptyPlaylist))
	}
	for i, t := range c.Playlist.Tracks {
		if t.Src == "" {
			errs = append(errs, fmt.Errorf("playlist.yaml: track %d has no src", i))
		}
	}

	return errors.Join(errs...)
}

// checkIDs reports empty or duplicate record IDs
func checkIDs(file string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%s: record %d has no id", file, i)
		}
		if seen[id] {
			return fmt.Errorf("%s: duplicate id %q", file, id)
		}
		seen[id] = true
	}
	return nil
}

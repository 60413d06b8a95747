// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go-grid-defense/internal/config"
	"go-grid-defense/pkg/grid"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for level files that are neither JSON nor YAML.
var ErrUnknownFormat = errors.New("defs: unknown level format")

// LoadLevel reads a level file; the format follows the extension.
func LoadLevel(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level file: %w", err)
	}
	defer f.Close()

	level, err := DecodeLevel(f, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return level, nil
}

// DecodeLevel decodes and validates a level. format is "json", "yaml" or "yml".
func DecodeLevel(r io.Reader, format string) (*Level, error) {
	var level Level
	switch strings.ToLower(format) {
	case "json":
		if err := json.NewDecoder(r).Decode(&level); err != nil {
			return nil, fmt.Errorf("failed to unmarshal level: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&level); err != nil {
			return nil, fmt.Errorf("failed to unmarshal level: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if len(level.Tiers) == 0 {
		level.Tiers = DefaultLevel().Tiers
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}

// Validate reports configuration errors. A level that fails here must not be played.
func (l *Level) Validate() error {
	if _, err := grid.NewPath(l.Path); err != nil {
		return err
	}
	onPath := make(map[grid.Coord]bool)
	for i := 0; i+1 < len(l.Path); i++ {
		from, to := l.Path[i], l.Path[i+1]
		d := to.Sub(from)
		if d.X != 0 && d.Y != 0 {
			return fmt.Errorf("path segment %s -> %s is diagonal", from, to)
		}
		step := grid.C(sign(d.X), sign(d.Y))
		for c := from; c != to; c = grid.C(c.X+step.X, c.Y+step.Y) {
			onPath[c] = true
		}
		onPath[to] = true
	}

	seen := make(map[grid.Coord]bool, len(l.BuildSpots))
	for _, c := range l.BuildSpots {
		if seen[c] {
			return fmt.Errorf("duplicate build spot %s", c)
		}
		if onPath[c] {
			return fmt.Errorf("build spot %s lies on the path", c)
		}
		seen[c] = true
	}

	if err := config.DefaultTuning().Merge(l.Tuning).Validate(); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}

	if len(l.Tiers) == 0 {
		return errors.New("level declares no enemy tiers")
	}
	ids := make(map[string]bool, len(l.Tiers))
	for _, t := range l.Tiers {
		switch {
		case t.ID == "":
			return errors.New("enemy tier without id")
		case ids[t.ID]:
			return fmt.Errorf("duplicate enemy tier %q", t.ID)
		case t.Health <= 0:
			return fmt.Errorf("enemy tier %q: health must be positive", t.ID)
		case t.ProgressRate <= 0:
			return fmt.Errorf("enemy tier %q: progress_rate must be positive", t.ID)
		}
		ids[t.ID] = true
	}

	for i, w := range l.Waves {
		if !ids[w.Tier] {
			return fmt.Errorf("wave %d: unknown tier %q", i+1, w.Tier)
		}
		if w.Interval <= 0 {
			return fmt.Errorf("wave %d: interval must be positive", i+1)
		}
		if w.Count < 0 {
			return fmt.Errorf("wave %d: negative count", i+1)
		}
	}
	return nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

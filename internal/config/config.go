// Package config holds run settings for boltgen: generator parameters,
// canvas bounds and animation pacing. Settings come from defaults, an
// optional JSON file, then key=value overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"boltgen/internal/geom"
	"boltgen/internal/lightning"
)

var ErrUnknownKey = errors.New("unknown key")

type File struct {
	Mode   lightning.Mode `json:"mode"`
	Seed   uint64         `json:"seed"`
	Bounds geom.Bounds    `json:"bounds"`

	Midpoint  lightning.MidpointParams  `json:"midpoint"`
	DualFront lightning.DualFrontParams `json:"dualfront"`

	// FrameMillis is the delay between animation frames in the viewer.
	FrameMillis int `json:"frame_ms"`
	// SegmentsPerFrame is how many segments each frame reveals.
	SegmentsPerFrame int `json:"segments_per_frame"`
}

// Default is a 160x110 canvas with one segment revealed every 30ms.
func Default() File {
	return File{
		Mode:             lightning.ModeMidpoint,
		Bounds:           geom.Bounds{MinX: -80, MaxX: 80, MinY: 0, MaxY: 110},
		Midpoint:         lightning.DefaultMidpointParams(),
		DualFront:        lightning.DefaultDualFrontParams(),
		FrameMillis:      30,
		SegmentsPerFrame: 1,
	}
}

// Load reads a JSON config on top of Default.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads JSON from r on top of Default and validates the result.
func Decode(r io.Reader) (File, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return File{}, err
	}
	if err := cfg.Validate(); err != nil {
		return File{}, err
	}
	return cfg, nil
}

func (c File) Validate() error {
	if _, err := lightning.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if err := lightning.ValidateBounds(c.Bounds); err != nil {
		return err
	}
	if err := c.Midpoint.Validate(); err != nil {
		return fmt.Errorf("midpoint: %w", err)
	}
	if err := c.DualFront.Validate(); err != nil {
		return fmt.Errorf("dualfront: %w", err)
	}
	if c.FrameMillis < 1 {
		return fmt.Errorf("%w: frame_ms must be >= 1, got %d", lightning.ErrInvalidParameter, c.FrameMillis)
	}
	if c.SegmentsPerFrame < 1 {
		return fmt.Errorf("%w: segments_per_frame must be >= 1, got %d", lightning.ErrInvalidParameter, c.SegmentsPerFrame)
	}
	return nil
}

// FrameInterval is FrameMillis as a duration.
func (c File) FrameInterval() time.Duration {
	return time.Duration(c.FrameMillis) * time.Millisecond
}

// setters maps override keys to field assignments.
var setters = map[string]func(c *File, v string) error{
	"mode": func(c *File, v string) error {
		m, err := lightning.ParseMode(v)
		c.Mode = m
		return err
	},
	"seed":               uintField(func(c *File) *uint64 { return &c.Seed }),
	"xmin":               floatField(func(c *File) *float64 { return &c.Bounds.MinX }),
	"xmax":               floatField(func(c *File) *float64 { return &c.Bounds.MaxX }),
	"ymin":               floatField(func(c *File) *float64 { return &c.Bounds.MinY }),
	"ymax":               floatField(func(c *File) *float64 { return &c.Bounds.MaxY }),
	"displacement":       floatField(func(c *File) *float64 { return &c.Midpoint.Displacement }),
	"detail":             floatField(func(c *File) *float64 { return &c.Midpoint.Detail }),
	"branch_probability": floatField(func(c *File) *float64 { return &c.Midpoint.BranchProbability }),
	"branch_min":         floatField(func(c *File) *float64 { return &c.Midpoint.BranchMinDisplacement }),
	"branch_spread":      floatField(func(c *File) *float64 { return &c.Midpoint.BranchSpread }),
	"branch_length":      floatField(func(c *File) *float64 { return &c.DualFront.BranchLength }),
	"max_steps":          intField(func(c *File) *int { return &c.DualFront.MaxSteps }),
	"connect_threshold":  floatField(func(c *File) *float64 { return &c.DualFront.ConnectThreshold }),
	"angle_spread":       floatField(func(c *File) *float64 { return &c.DualFront.AngleSpread }),
	"frame_ms":           intField(func(c *File) *int { return &c.FrameMillis }),
	"segments_per_frame": intField(func(c *File) *int { return &c.SegmentsPerFrame }),
}

func floatField(p func(*File) *float64) func(*File, string) error {
	return func(c *File, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*p(c) = f
		return nil
	}
}

func intField(p func(*File) *int) func(*File, string) error {
	return func(c *File, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*p(c) = n
		return nil
	}
}

func uintField(p func(*File) *uint64) func(*File, string) error {
	return func(c *File, v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		*p(c) = n
		return nil
	}
}

// Keys lists every override key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyOverrides parses key=value pairs separated by commas, whitespace or
// newlines and returns the updated, validated config. Lines starting with
// '#' are ignored. c is left untouched on error.
func (c File) ApplyOverrides(text string) (File, error) {
	out := c
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		for _, kv := range fields {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return c, fmt.Errorf("override %q: want key=value", kv)
			}
			k = strings.ToLower(strings.TrimSpace(k))
			set, ok := setters[k]
			if !ok {
				return c, fmt.Errorf("override %q: %w", k, ErrUnknownKey)
			}
			if err := set(&out, strings.TrimSpace(v)); err != nil {
				return c, fmt.Errorf("override %s: %w", k, err)
			}
		}
	}
	if err := out.Validate(); err != nil {
		return c, err
	}
	return out, nil
}

// Overrides renders c as override text that ApplyOverrides accepts.
func (c File) Overrides() string {
	g := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	lines := []string{
		"mode=" + string(c.Mode),
		"seed=" + strconv.FormatUint(c.Seed, 10),
		fmt.Sprintf("xmin=%s xmax=%s ymin=%s ymax=%s", g(c.Bounds.MinX), g(c.Bounds.MaxX), g(c.Bounds.MinY), g(c.Bounds.MaxY)),
		fmt.Sprintf("displacement=%s detail=%s", g(c.Midpoint.Displacement), g(c.Midpoint.Detail)),
		fmt.Sprintf("branch_probability=%s branch_min=%s branch_spread=%s", g(c.Midpoint.BranchProbability), g(c.Midpoint.BranchMinDisplacement), g(c.Midpoint.BranchSpread)),
		fmt.Sprintf("branch_length=%s max_steps=%d", g(c.DualFront.BranchLength), c.DualFront.MaxSteps),
		fmt.Sprintf("connect_threshold=%s angle_spread=%s", g(c.DualFront.ConnectThreshold), g(c.DualFront.AngleSpread)),
		fmt.Sprintf("frame_ms=%d segments_per_frame=%d", c.FrameMillis, c.SegmentsPerFrame),
	}
	return strings.Join(lines, "\n")
}

// Generate builds the bolt for seed: endpoints come first from the seeded
// stream, then the generator selected by Mode continues drawing from it.
// The same seed and config always give the same bolt.
func (c File) Generate(seed uint64) (lightning.Bolt, error) {
	return c.GenerateMode(seed, c.Mode)
}

// GenerateMode is Generate with the mode overridden.
func (c File) GenerateMode(seed uint64, mode lightning.Mode) (lightning.Bolt, error) {
	src := lightning.NewSource(seed)
	start, end := lightning.RandomEndpoints(src, c.Bounds)
	return lightning.Generate(src, mode, start, end, c.Bounds, c.Midpoint, c.DualFront)
}

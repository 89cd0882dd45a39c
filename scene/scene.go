// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/pathanim"
	"github.com/gogpu/pathanim/drawing"
	"github.com/gogpu/pathanim/pathdata"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Common errors.
var (
	// ErrFormat is returned for a file extension other than .yaml, .yml or
	// .toml.
	ErrFormat = errors.New("scene: unsupported file format")

	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("scene: invalid scene")

	// ErrColor is returned for a malformed or unknown color.
	ErrColor = errors.New("scene: invalid color")

	// ErrDuration is returned for a malformed duration.
	ErrDuration = errors.New("scene: invalid duration")

	// ErrPathCount is returned by Apply when the controller does not animate
	// exactly the scene's paths.
	ErrPathCount = errors.New("scene: controller path count mismatch")
)

// Format is a scene file encoding.
type Format int

const (
	// YAML is read with gopkg.in/yaml.v3.
	YAML Format = iota
	// TOML is read with github.com/pelletier/go-toml/v2.
	TOML
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// Scene is the declarative description of an animated drawing.
type Scene struct {
	Width       int           `yaml:"width" toml:"width"`
	Height      int           `yaml:"height" toml:"height"`
	Background  Color         `yaml:"background" toml:"background"`
	Color       Color         `yaml:"color" toml:"color"`
	Style       drawing.Style `yaml:"style" toml:"style"`
	StrokeWidth float64       `yaml:"stroke_width" toml:"stroke_width"`
	Scale       Vec           `yaml:"scale" toml:"scale"`
	Pivot       Vec           `yaml:"pivot" toml:"pivot"`
	Translate   Vec           `yaml:"translate" toml:"translate"`
	Paths       []Path        `yaml:"paths" toml:"paths"`
	Schedule    Schedule      `yaml:"schedule" toml:"schedule"`
}

// Path is one path of a scene. Color and Style fall back to the scene's.
type Path struct {
	D     string         `yaml:"d" toml:"d"`
	Color *Color         `yaml:"color" toml:"color"`
	Style *drawing.Style `yaml:"style" toml:"style"`
}

// Schedule describes how Apply reveals the paths.
type Schedule struct {
	Mode         Mode     `yaml:"mode" toml:"mode"`
	Duration     Duration `yaml:"duration" toml:"duration"`
	Delay        Duration `yaml:"delay" toml:"delay"`
	Stagger      Duration `yaml:"stagger" toml:"stagger"`
	Fill         bool     `yaml:"fill" toml:"fill"`
	FillDuration Duration `yaml:"fill_duration" toml:"fill_duration"`
}

// Default returns a scene with every field but Paths set.
func Default() *Scene {
	return &Scene{
		Width:       400,
		Height:      400,
		Background:  Color(gg.White),
		Color:       Color(gg.Black),
		Style:       drawing.Fill,
		StrokeWidth: drawing.DefaultStrokeWidth,
		Scale:       Vec{X: 1, Y: 1},
		Schedule: Schedule{
			Mode:         ModeSequence,
			Duration:     Duration(pathanim.DefaultDuration),
			Stagger:      Duration(pathanim.DefaultStagger),
			FillDuration: Duration(pathanim.DefaultFillDuration),
		},
	}
}

// Load reads the scene file at path, applying defaults for missing fields,
// and validates it.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates a scene.
func Parse(data []byte, format Format) (*Scene, error) {
	s := Default()

	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, s)
	case TOML:
		err = toml.Unmarshal(data, s)
	default:
		return nil, fmt.Errorf("%w: %d", ErrFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating scene: %w", err)
	}
	return s, nil
}

// Validate reports every problem with the scene at once.
func (s *Scene) Validate() error {
	var errs []string

	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, "width and height must be positive")
	}
	if s.StrokeWidth <= 0 {
		errs = append(errs, "stroke_width must be positive")
	}
	if s.Scale.X == 0 || s.Scale.Y == 0 {
		errs = append(errs, "scale must be non-zero")
	}

	if len(s.Paths) == 0 {
		errs = append(errs, "at least one path is required")
	}
	for i, p := range s.Paths {
		if _, err := pathdata.Parse(p.D); err != nil {
			errs = append(errs, fmt.Sprintf("paths[%d].d: %v", i, err))
		}
	}

	sc := s.Schedule
	if !sc.Mode.valid() {
		errs = append(errs, fmt.Sprintf("schedule.mode %q is not one of sequence, parallel, staggered, together", sc.Mode))
	}
	if sc.Duration < 0 || sc.Delay < 0 || sc.Stagger < 0 || sc.FillDuration < 0 {
		errs = append(errs, "schedule durations must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

// Build parses the paths and creates the drawing with a controller sized
// to them. opts are passed to the controller.
func (s *Scene) Build(opts ...pathanim.Option) (*drawing.Drawing, error) {
	paths := make([]*gg.Path, len(s.Paths))
	colors := make([]gg.RGBA, len(s.Paths))
	styles := make([]drawing.Style, len(s.Paths))
	for i, p := range s.Paths {
		gp, err := pathdata.Parse(p.D)
		if err != nil {
			return nil, fmt.Errorf("scene: path %d: %w", i, err)
		}
		paths[i] = gp

		colors[i] = s.Color.RGBA()
		if p.Color != nil {
			colors[i] = p.Color.RGBA()
		}
		styles[i] = s.Style
		if p.Style != nil {
			styles[i] = *p.Style
		}
	}

	return drawing.New(paths...).
		Colors(colors...).
		Styles(styles...).
		StrokeWidth(s.StrokeWidth).
		ScaleXY(s.Scale.X, s.Scale.Y).
		Pivot(s.Pivot.X, s.Pivot.Y).
		Translate(s.Translate.X, s.Translate.Y).
		ControllerOptions(opts...).
		Build()
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Duration is a time.Duration written as a Go duration string ("750ms").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrDuration, text)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Color is a color written as hex ("#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa") or as a CSS color name ("tomato").
type Color gg.RGBA

// ParseColor parses a hex or named color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if !validHex(hex) {
			return Color{}, fmt.Errorf("%w: %q", ErrColor, s)
		}
		return Color(gg.Hex(hex)), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color(gg.FromColor(c)), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrColor, s)
}

// RGBA returns the color as a gg color.
func (c Color) RGBA() gg.RGBA { return gg.RGBA(c) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler. Colors are written as
// "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	return fmt.Appendf(nil, "#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A)), nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

func validHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := range len(s) {
		switch c := s[i]; {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Vec is a 2D point or factor.
type Vec struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Mode selects how Apply schedules the paths.
type Mode string

// Schedule modes.
const (
	// ModeSequence draws the paths one after another.
	ModeSequence Mode = "sequence"
	// ModeParallel gives every path its own concurrent sequence.
	ModeParallel Mode = "parallel"
	// ModeStaggered starts each path Stagger after the previous one.
	ModeStaggered Mode = "staggered"
	// ModeTogether draws every path at once.
	ModeTogether Mode = "together"
)

func (m Mode) valid() bool {
	switch m {
	case ModeSequence, ModeParallel, ModeStaggered, ModeTogether:
		return true
	}
	return false
}

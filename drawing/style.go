// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"fmt"
	"strings"
)

// Style selects how a path is drawn.
type Style uint8

const (
	// Fill reveals the outline and then fills the shape as the fill
	// opacity rises.
	Fill Style = iota

	// Stroke reveals the outline only.
	Stroke
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case Fill:
		return "fill"
	case Stroke:
		return "stroke"
	default:
		return fmt.Sprintf("Style(%d)", s)
	}
}

// ParseStyle converts "fill" or "stroke" (any case) into a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fill":
		return Fill, nil
	case "stroke":
		return Stroke, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// UnmarshalText implements encoding.TextUnmarshaler so styles can be read
// from scene files.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene loads declarative path animations from YAML or TOML files.
//
// A scene lists SVG path data with colors and styles, the canvas it is drawn
// on, and a schedule describing how the paths are revealed:
//
//	width: 240
//	height: 240
//	paths:
//	  - d: "M20 20 H220 V220 H20 Z"
//	    color: "#1e88e5"
//	  - d: "M60 120 L110 170 L180 70"
//	    color: tomato
//	    style: stroke
//	schedule:
//	  mode: staggered
//	  duration: 800ms
//	  stagger: 200ms
//	  fill: true
//
// Load reads and validates a file, Build turns it into a drawing.Drawing and
// Apply schedules its animations on the drawing's controller.
package scene

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package drawing binds a set of paths to a pathanim.Controller and renders
// the animated result with gg.
//
// A Builder collects static configuration (colors, scale, pivot,
// translation, draw style) and produces a Drawing. The Drawing owns a
// controller sized to its path count; Draw renders the current frame by
// stroking the revealed part of every outline and filling fill-style paths
// with the controller's fill opacity.
//
//	d, err := drawing.New(paths...).
//	    Colors(gg.Hex("#e63946"), gg.Hex("#457b9d")).
//	    Scale(2).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	d.Controller().AnimateAllPathsStaggered()
//	// on every frame:
//	_ = d.Draw(dc)
package drawing

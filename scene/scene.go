// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"slices"

	"github.com/sportgl/sport/physics"
)

// Scene is the registry of visible drawables. The frame loop calls
// [Scene.UpdateAndRender] once per frame, and may call
// [Scene.PruneRemoved] to retire drawables whose simulated entities are
// gone. All methods are meant for the single frame-processing
// goroutine; the scene does no locking of its own.
type Scene struct {
	visible []Drawable
}

// NewScene returns a new empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// MakeVisible registers the given drawable with the scene, so that it
// is updated and rendered every frame. Registering an already-visible
// drawable is a no-op.
func (sc *Scene) MakeVisible(d Drawable) {
	if slices.Contains(sc.visible, d) {
		return
	}
	sc.visible = append(sc.visible, d)
}

// Hide unregisters the given drawable from the scene.
func (sc *Scene) Hide(d Drawable) {
	sc.visible = slices.DeleteFunc(sc.visible, func(v Drawable) bool {
		return v == d
	})
}

// IsVisible reports whether the given drawable is registered.
func (sc *Scene) IsVisible(d Drawable) bool {
	return slices.Contains(sc.visible, d)
}

// Visible returns the visible drawables in registration order.
// The returned slice is the scene's own; callers must not mutate it.
func (sc *Scene) Visible() []Drawable {
	return sc.visible
}

// UpdateAndRender updates and renders all visible drawables, in
// registration order.
func (sc *Scene) UpdateAndRender() {
	for _, d := range sc.visible {
		d.UpdateAndRender()
	}
}

// PruneRemoved hides every visible drawable whose simulated entity has
// been removed from the given system, and returns how many were hidden.
// Drawables that cannot detect removal (floating ones, and those bound
// to virtual characters) are never pruned and must be hidden
// explicitly by their owners.
func (sc *Scene) PruneRemoved(sys *physics.System) int {
	n := len(sc.visible)
	sc.visible = slices.DeleteFunc(sc.visible, func(d Drawable) bool {
		return d.WasRemovedFrom(sys)
	})
	pruned := n - len(sc.visible)
	if pruned > 0 {
		slog.Debug("scene: pruned drawables removed from physics system", "count", pruned)
	}
	return pruned
}

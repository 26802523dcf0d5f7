// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// Object is the closed set of simulated entity variants the
// visualization layer can bind to: [Body], [Character], and
// [CharacterVirtual]. A nil Object is the "floating" variant with no
// bound entity.
//
// An Object held by a visualization primitive is a non-owning alias:
// the simulation owns the entity and must outlive the primitive. That
// is a contract, not something enforced by reference counting.
type Object interface {
	isPhysicsObject()
}

func (b *Body) isPhysicsObject()              {}
func (c *Character) isPhysicsObject()         {}
func (cv *CharacterVirtual) isPhysicsObject() {}

// pkg/starmap/directions.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

import (
	"github.com/fleetdash/starchart/pkg/rand"
)

// DirectionSet is the pool of offset directions that orbiting bodies and
// ships around a waypoint are spread along. Projected y grows downward,
// so "north" is -y.
type DirectionSet [8][2]float32

const diag = 0.70710677

// CompassDirections has the eight compass points as unit vectors.
var CompassDirections = DirectionSet{
	{0, -1}, {diag, -diag}, {1, 0}, {diag, diag},
	{0, 1}, {-diag, diag}, {-1, 0}, {-diag, -diag},
}

// LegacyDirections reproduces the layout of the earlier web dashboard.
// Slots 5 and 7 repeat slots 3 and 1, so only six distinct directions
// are ever used; it is kept so that maps can match old screenshots.
var LegacyDirections = DirectionSet{
	{0, -1}, {0.7, -0.7}, {1, 0}, {0.7, 0.7},
	{0, 1}, {0.7, 0.7}, {-1, 0}, {0.7, -0.7},
}

// Distinct returns the number of distinct vectors in the set.
func (ds DirectionSet) Distinct() int {
	seen := make(map[[2]float32]struct{})
	for _, d := range ds {
		seen[d] = struct{}{}
	}
	return len(seen)
}

// Salt used when hashing a system symbol to seed its direction shuffle.
const directionSalt = 0

// ShuffleDirections returns the system's direction pool: ds in an order
// that depends only on the system symbol.
func ShuffleDirections(ds DirectionSet, system string) DirectionSet {
	var r DirectionSet
	perm := rand.SeededShuffle(len(ds), rand.Hash53(system, directionSalt))
	for i, p := range perm {
		r[i] = ds[p]
	}
	return r
}

// Role distinguishes the kinds of entity that draw directions from a
// system's pool; each has its own ordinal counter so that adding a ship
// never moves an orbiting body and vice versa.
type Role int

const (
	RoleOrbital Role = iota
	RoleShip
)

// Ordinals hands out consecutive ordinals per role for one system's
// layout pass.
type Ordinals struct {
	System string
	next   map[Role]int
}

func NewOrdinals(system string) *Ordinals {
	return &Ordinals{System: system, next: make(map[Role]int)}
}

// Next returns the next ordinal for the role, starting from 0.
func (o *Ordinals) Next(r Role) int {
	n := o.next[r]
	o.next[r] = n + 1
	return n
}

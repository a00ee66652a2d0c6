// pkg/rand/seeded.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import "unicode/utf16"

///////////////////////////////////////////////////////////////////////////
// Reproducible layout randomness
//
// Map layout has to come out the same on every load without storing any
// screen coordinates, so everything here is a pure function of its
// arguments. The string hash and the generator are deliberately simple
// and must not change: doing so would move every orbiting body on the map.

// Hash53 returns a 53-bit hash of s using two 32-bit multiply/xor lanes
// over the string's UTF-16 code units. The salt selects independent hash
// streams for the same string.
func Hash53(s string, salt uint32) uint64 {
	h1 := uint32(0xdeadbeef) ^ salt
	h2 := uint32(0x41c6ce57) ^ salt
	for _, c := range utf16.Encode([]rune(s)) {
		h1 = (h1 ^ uint32(c)) * 2654435761
		h2 = (h2 ^ uint32(c)) * 1597334677
	}
	h1 = (h1 ^ (h1 >> 16)) * 2246822507
	h1 ^= (h2 ^ (h2 >> 13)) * 3266489909
	h2 = (h2 ^ (h2 >> 16)) * 2246822507
	h2 ^= (h1 ^ (h1 >> 13)) * 3266489909

	return uint64(h2&0x1fffff)<<32 | uint64(h1)
}

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// LCGFloat returns a value in [0,1) from a single step of a small linear
// congruential generator started at the given state.
func LCGFloat(state uint64) float64 {
	x := (state%lcgModulus*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(x) / lcgModulus
}

// SeededShuffle returns a permutation of [0, n) computed by a
// Fisher-Yates shuffle where the k-th draw comes from the generator
// reseeded to seed+k. The same (n, seed) always gives the same result.
func SeededShuffle(n int, seed uint64) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var k uint64
	for i := n - 1; i > 0; i-- {
		j := int(LCGFloat(seed+k) * float64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
		k++
	}
	return perm
}

// ShuffleSeeded returns a copy of s reordered by SeededShuffle.
func ShuffleSeeded[Slice ~[]E, E any](s Slice, seed uint64) Slice {
	perm := SeededShuffle(len(s), seed)
	r := make(Slice, len(s))
	for i, p := range perm {
		r[i] = s[p]
	}
	return r
}

// pkg/math/core.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Since layout coordinates are float32 throughout, it's handy to be able
// to call these directly rather than with all of the casts that are
// required when using the math package.

func Sqrt(a float32) float32 {
	return float32(gomath.Sqrt(float64(a)))
}

func Ceil(v float32) float32 {
	return float32(gomath.Ceil(float64(v)))
}

func Floor(v float32) float32 {
	return float32(gomath.Floor(float64(v)))
}

func Round(v float32) float32 {
	return float32(gomath.Round(float64(v)))
}

func IsFinite(v float32) bool {
	return !gomath.IsNaN(float64(v)) && !gomath.IsInf(float64(v), 0)
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

func Lerp(x, a, b float32) float32 {
	return (1-x)*a + x*b
}

// Remap linearly maps v from the range [inMin, inMax] to [outMin, outMax].
// The caller is responsible for ensuring that inMin != inMax.
func Remap(v, inMin, inMax, outMin, outMax float32) float32 {
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

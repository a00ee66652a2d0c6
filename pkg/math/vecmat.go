// pkg/math/vecmat.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// point/vector utilities

func Add2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] + b[0], a[1] + b[1]}
}

func Sub2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] - b[0], a[1] - b[1]}
}

func Scale2f(a [2]float32, s float32) [2]float32 {
	return [2]float32{s * a[0], s * a[1]}
}

func Mul2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] * b[0], a[1] * b[1]}
}

// Lerp2f returns the linear interpolation of a and b at x; x is not
// clamped, so values outside [0,1] extrapolate along the line.
func Lerp2f(x float32, a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{Lerp(x, a[0], b[0]), Lerp(x, a[1], b[1])}
}

func Length2f(v [2]float32) float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1])
}

func Distance2f(a [2]float32, b [2]float32) float32 {
	return Length2f(Sub2f(a, b))
}

func Normalize2f(a [2]float32) [2]float32 {
	l := Length2f(a)
	if l == 0 {
		return [2]float32{0, 0}
	}
	return Scale2f(a, 1/l)
}

package geometry

import "math"

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func floor32(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

func ceil32(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

func round32(x float32) float32 {
	return float32(math.Round(float64(x)))
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func acos32(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func isNaN32(x float32) bool {
	return x != x
}

func isFinite32(x float32) bool {
	return !isNaN32(x) && x <= math.MaxFloat32 && x >= -math.MaxFloat32
}

// fastInvSqrt approximates 1/sqrt(x) from the bit pattern of x, refined by
// two Newton-Raphson steps. Relative error stays below 1e-3 for positive
// normal inputs.
func fastInvSqrt(x float32) float32 {
	y := math.Float32frombits(0x5f3759df - math.Float32bits(x)>>1)
	y *= 1.5 - 0.5*x*y*y
	y *= 1.5 - 0.5*x*y*y
	return y
}

package geometry

// Vec4 is a 4D vector of float32 components, used for homogeneous
// coordinates and as the plane representation in this package. Same layout
// contract as Vec3: four contiguous fields, no padding.
type Vec4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewVec4 builds a vector from four scalars verbatim.
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Extend appends w as a fourth component.
func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// ToPoint returns v as homogeneous coordinates with W = 1.
func (v Vec3) ToPoint() Vec4 {
	return v.Extend(1)
}

// ToDirection returns v as homogeneous coordinates with W = 0.
func (v Vec3) ToDirection() Vec4 {
	return v.Extend(0)
}

// Truncate drops the W component.
func (v Vec4) Truncate() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// PerspectiveDivide returns (X/W, Y/W, Z/W). When W is within Epsilon of
// zero the division is undefined and the zero vector comes back instead.
func (v Vec4) PerspectiveDivide() Vec3 {
	if abs32(v.W) < Epsilon {
		return Vec3{}
	}
	inv := 1 / v.W
	return Vec3{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}

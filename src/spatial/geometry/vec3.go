package geometry

import (
	"errors"
	"fmt"
)

// Vec3 is a 3D vector of float32 components. The three fields are laid out
// contiguously in X, Y, Z order with no padding, so a []Vec3 can be viewed
// as a flat float32 array by GPU-facing consumers (see the render package).
//
// Vec3 is a plain value: every operation reads its operands and returns a
// new value or a scalar, never mutating shared state, so all operations are
// safe to call concurrently.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// ErrDegenerateVector is returned by TryNormalize when the input's length
// is within Epsilon of zero and its direction is undefined.
var ErrDegenerateVector = errors.New("geometry: degenerate vector, length within epsilon of zero")

// ErrTotalInternalReflection is returned by Refract when no transmitted ray
// exists for the given index ratio.
var ErrTotalInternalReflection = errors.New("geometry: total internal reflection")

// NewVec3 builds a vector from three scalars verbatim. No validation:
// NaN and infinite components are carried as-is.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero returns (0, 0, 0).
func Zero() Vec3 { return Vec3{} }

// One returns (1, 1, 1).
func One() Vec3 { return Vec3{X: 1, Y: 1, Z: 1} }

// UnitX returns (1, 0, 0).
func UnitX() Vec3 { return Vec3{X: 1} }

// UnitY returns (0, 1, 0).
func UnitY() Vec3 { return Vec3{Y: 1} }

// UnitZ returns (0, 0, 1).
func UnitZ() Vec3 { return Vec3{Z: 1} }

// Splat returns a vector with all three components set to v.
func Splat(v float32) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Add returns the componentwise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the componentwise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul scales every component by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides every component by s. A zero divisor is not special-cased:
// components follow IEEE 754 rules and come back infinite or NaN.
func (v Vec3) Div(s float32) Vec3 {
	inv := 1 / s
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Neg returns the componentwise negation.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product of v and o. The result is
// zero when v and o are parallel or either is zero.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns Dot(v, v). Prefer it over Length when only
// relative magnitudes matter; it skips the square root.
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the Euclidean magnitude of v.
func (v Vec3) Length() float32 {
	return sqrt32(v.LengthSquared())
}

// Normalize returns v scaled to unit length. Degenerate inputs, those with
// length within Epsilon of zero, come back as the zero vector rather than
// dividing by a near-zero magnitude and producing NaN.
func (v Vec3) Normalize() Vec3 {
	lsq := v.LengthSquared()
	if lsq < Epsilon*Epsilon {
		return Vec3{}
	}
	return v.Mul(1 / sqrt32(lsq))
}

// NormalizeFast is Normalize computed with an approximate reciprocal square
// root. The result's relative error is at most 1e-3; use Normalize when
// full precision matters. Degenerate inputs come back as the zero vector,
// under the same Epsilon guard as Normalize.
func (v Vec3) NormalizeFast() Vec3 {
	lsq := v.LengthSquared()
	if lsq < Epsilon*Epsilon {
		return Vec3{}
	}
	return v.Mul(fastInvSqrt(lsq))
}

// TryNormalize returns the unit vector in the direction of v, or
// ErrDegenerateVector when the length is within Epsilon of zero. Unlike
// Normalize it never substitutes a fallback, leaving the degenerate case
// to the caller.
func (v Vec3) TryNormalize() (Vec3, error) {
	lsq := v.LengthSquared()
	if lsq < Epsilon*Epsilon {
		return Vec3{}, ErrDegenerateVector
	}
	return v.Mul(1 / sqrt32(lsq)), nil
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float32 {
	return v.Sub(o).Length()
}

// DistanceSquaredTo returns the squared distance between v and o. Prefer
// it for comparisons; it skips the square root.
func (v Vec3) DistanceSquaredTo(o Vec3) float32 {
	return v.Sub(o).LengthSquared()
}

// Min returns the componentwise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{min32(v.X, o.X), min32(v.Y, o.Y), min32(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{max32(v.X, o.X), max32(v.Y, o.Y), max32(v.Z, o.Z)}
}

// Abs returns the componentwise absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{abs32(v.X), abs32(v.Y), abs32(v.Z)}
}

// Clamp limits each component to the range set by lo and hi.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return v.Max(lo).Min(hi)
}

// Floor returns the componentwise floor.
func (v Vec3) Floor() Vec3 {
	return Vec3{floor32(v.X), floor32(v.Y), floor32(v.Z)}
}

// Ceil returns the componentwise ceiling.
func (v Vec3) Ceil() Vec3 {
	return Vec3{ceil32(v.X), ceil32(v.Y), ceil32(v.Z)}
}

// Round returns each component rounded to the nearest integer, halves away
// from zero.
func (v Vec3) Round() Vec3 {
	return Vec3{round32(v.X), round32(v.Y), round32(v.Z)}
}

// Lerp linearly interpolates from v to o: t=0 yields v, t=1 yields o.
// t is not clamped; values outside [0, 1] extrapolate.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return v.Add(o.Sub(v).Mul(t))
}

// Slerp spherically interpolates between two unit vectors. Both inputs
// should be normalized. Nearly parallel inputs fall back to normalized
// linear interpolation, where the spherical form loses precision.
func (v Vec3) Slerp(o Vec3, t float32) Vec3 {
	d := v.Dot(o)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	if abs32(d) > 1-Epsilon {
		return v.Lerp(o, t).Normalize()
	}

	angle := acos32(d)
	sinAngle := sin32(angle)
	a := sin32((1-t)*angle) / sinAngle
	b := sin32(t*angle) / sinAngle
	return v.Mul(a).Add(o.Mul(b))
}

// Reflect mirrors v around the given surface normal. The normal must be
// unit length; Reflect does not normalize it, and a non-unit normal yields
// a mathematically different, non-reflective result.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Refract bends v through a surface with the given normal and refractive
// index ratio eta. It returns ErrTotalInternalReflection when no
// transmitted ray exists. The normal must be unit length.
func (v Vec3) Refract(normal Vec3, eta float32) (Vec3, error) {
	cosI := -v.Dot(normal)
	sinT2 := eta * eta * (1 - cosI*cosI)
	if sinT2 > 1 {
		return Vec3{}, ErrTotalInternalReflection
	}
	cosT := sqrt32(1 - sinT2)
	return v.Mul(eta).Add(normal.Mul(eta*cosI - cosT)), nil
}

// ProjectOnto returns the component of v parallel to o.
func (v Vec3) ProjectOnto(o Vec3) Vec3 {
	return o.Mul(v.Dot(o) / o.LengthSquared())
}

// RejectFrom returns the component of v perpendicular to o.
func (v Vec3) RejectFrom(o Vec3) Vec3 {
	return v.Sub(v.ProjectOnto(o))
}

// IsFinite reports whether all three components are finite, neither NaN
// nor infinite.
func (v Vec3) IsFinite() bool {
	return isFinite32(v.X) && isFinite32(v.Y) && isFinite32(v.Z)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3) IsNaN() bool {
	return isNaN32(v.X) || isNaN32(v.Y) || isNaN32(v.Z)
}

// IsZero reports whether v is within Epsilon of the zero vector, the same
// guard the normalization variants apply.
func (v Vec3) IsZero() bool {
	return v.LengthSquared() < Epsilon*Epsilon
}

// IsNormalized reports whether v is within Epsilon of unit length.
func (v Vec3) IsNormalized() bool {
	return abs32(v.LengthSquared()-1) < Epsilon
}

// MaxComponent returns the largest absolute component value.
func (v Vec3) MaxComponent() float32 {
	return max32(abs32(v.X), max32(abs32(v.Y), abs32(v.Z)))
}

// MinComponent returns the smallest absolute component value.
func (v Vec3) MinComponent() float32 {
	return min32(abs32(v.X), min32(abs32(v.Y), abs32(v.Z)))
}

// Component returns the component at index i (0=X, 1=Y, 2=Z). It panics
// when i is out of range.
func (v Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("geometry: component index out of range: %d", i))
	}
}

// SetComponent stores val at index i (0=X, 1=Y, 2=Z). It panics when i is
// out of range.
func (v *Vec3) SetComponent(i int, val float32) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic(fmt.Sprintf("geometry: component index out of range: %d", i))
	}
}

// Array returns the components as a fixed array in X, Y, Z order.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// FromArray builds a vector from a fixed array in X, Y, Z order.
func FromArray(a [3]float32) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

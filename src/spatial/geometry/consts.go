package geometry

const (
	// Epsilon is the near-zero magnitude threshold shared by every
	// normalization variant and near-zero predicate in this package. A
	// vector with LengthSquared() < Epsilon*Epsilon has no usable
	// direction and is treated as the zero vector.
	Epsilon float32 = 1e-6

	// SpatialEpsilon is the coarser tolerance for positional comparisons
	// in world-space units.
	SpatialEpsilon float32 = 1e-4
)

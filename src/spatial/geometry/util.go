package geometry

// A plane is a Vec4 holding a unit normal in X, Y, Z and the signed offset
// from the origin in W. Signed distance from the plane is positive on the
// side the normal points toward.

// PlaneDistance returns the signed distance from point to the plane.
func PlaneDistance(plane Vec4, point Vec3) float32 {
	return plane.Truncate().Dot(point) + plane.W
}

// PointInsidePlanes reports whether point lies on or behind every plane.
// A positive margin expands the accepted region outward, a negative one
// shrinks it.
func PointInsidePlanes(planes []Vec4, point Vec3, margin float32) bool {
	for i := 0; i < len(planes); i++ {
		if PlaneDistance(planes[i], point)-margin > 0 {
			return false
		}
	}
	return true
}

// VerticesBehindPlane reports whether every vertex lies on or behind the
// plane, with the same margin convention as PointInsidePlanes.
func VerticesBehindPlane(plane Vec4, vertices []Vec3, margin float32) bool {
	for i := 0; i < len(vertices); i++ {
		if PlaneDistance(plane, vertices[i])-margin > 0 {
			return false
		}
	}
	return true
}

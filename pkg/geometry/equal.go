package geometry

// Equal reports whether two geometries have the same variant and identical
// coordinates in the same order.
func Equal(a, b Geometry) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a := a.(type) {
	case Point:
		return a == b.(Point)
	case *LineString:
		return pointsEqual(a.points, b.(*LineString).points)
	case *LinearRing:
		return pointsEqual(a.points, b.(*LinearRing).points)
	case *Polygon:
		other := b.(*Polygon)
		if len(a.rings) != len(other.rings) {
			return false
		}
		for i := range a.rings {
			if !pointsEqual(a.rings[i].points, other.rings[i].points) {
				return false
			}
		}
		return true
	case *MultiPoint:
		return pointsEqual(a.points, b.(*MultiPoint).points)
	case *MultiLineString:
		other := b.(*MultiLineString)
		if len(a.lines) != len(other.lines) {
			return false
		}
		for i := range a.lines {
			if !Equal(a.lines[i], other.lines[i]) {
				return false
			}
		}
		return true
	case *MultiPolygon:
		other := b.(*MultiPolygon)
		if len(a.polygons) != len(other.polygons) {
			return false
		}
		for i := range a.polygons {
			if !Equal(a.polygons[i], other.polygons[i]) {
				return false
			}
		}
		return true
	case *GeometryCollection:
		other := b.(*GeometryCollection)
		if len(a.geometries) != len(other.geometries) {
			return false
		}
		for i := range a.geometries {
			if !Equal(a.geometries[i], other.geometries[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

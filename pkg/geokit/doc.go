// Package geokit provides geographic value types and geodesy math.
//
// Positions, bounding boxes and distances are immutable values. All public
// functions take and return degrees; radians are used internally only.
//
// # Basic Usage
//
//	berlin := geokit.NewLatLng(52.5200, 13.4050)
//	paris := geokit.NewLatLng(48.8566, 2.3522)
//
//	d := geokit.DistanceHaversine(berlin, paris)
//	fmt.Printf("%.1f km\n", d.Kilometers())
//
//	heading := geokit.Heading(berlin, paris)
//	mid := geokit.Midpoint(berlin, paris)
//
// # Ellipsoidal Distance
//
// DistanceVincenty uses the WGS84 ellipsoid and may fail to converge for
// nearly antipodal points:
//
//	d, err := geokit.DistanceVincenty(a, b)
//	var nc *geokit.ErrNotConverged
//	if errors.As(err, &nc) {
//	    // fall back to the spherical distance
//	    d = geokit.DistanceHaversine(a, b)
//	}
//
// # Bounding Boxes
//
// A BoundingBox may cross the antimeridian (southwest longitude greater than
// northeast longitude). Expand and Shrink grow or shrink a box by a distance
// in every direction:
//
//	box, _ := geokit.NewBoundingBox(sw, ne)
//	search := geokit.Expand(box, geokit.NewDistance(5, geokit.UnitKilometers))
package geokit

package geokit

import (
	"math"
)

// EarthRadius is the mean Earth radius in meters (IUGG R1).
const EarthRadius = 6371008.8

// Ellipsoid describes a reference ellipsoid.
type Ellipsoid struct {
	SemiMajorAxis     float64 // a, meters
	InverseFlattening float64 // 1/f
}

// Flattening returns f.
func (e Ellipsoid) Flattening() float64 { return 1 / e.InverseFlattening }

// SemiMinorAxis returns b = (1 - f) * a.
func (e Ellipsoid) SemiMinorAxis() float64 { return (1 - e.Flattening()) * e.SemiMajorAxis }

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{SemiMajorAxis: 6378137.0, InverseFlattening: 298.257223563}

const (
	vincentyMaxIterations = 100
	vincentyTolerance     = 1e-12
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 { return rad * 180 / math.Pi }

// DistanceHaversine returns the great-circle distance between two positions
// on a sphere of radius EarthRadius.
func DistanceHaversine(from, to Position) Distance {
	lat1 := Deg2Rad(from.Latitude())
	lng1 := Deg2Rad(from.Longitude())
	lat2 := Deg2Rad(to.Latitude())
	lng2 := Deg2Rad(to.Longitude())

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Meters(EarthRadius * c)
}

// DistanceVincenty returns the geodesic distance between two positions on the
// WGS84 ellipsoid using Vincenty's inverse formula.
//
// Returns ErrNotConverged when the iteration does not settle within 100 steps,
// which happens for nearly antipodal points.
func DistanceVincenty(from, to Position) (Distance, error) {
	a := WGS84.SemiMajorAxis
	f := WGS84.Flattening()
	b := WGS84.SemiMinorAxis()

	lat1 := Deg2Rad(from.Latitude())
	lat2 := Deg2Rad(to.Latitude())
	L := Deg2Rad(to.Longitude() - from.Longitude())

	U1 := math.Atan((1 - f) * math.Tan(lat1))
	U2 := math.Atan((1 - f) * math.Tan(lat2))
	sinU1, cosU1 := math.Sin(U1), math.Cos(U1)
	sinU2, cosU2 := math.Sin(U2), math.Cos(U2)

	lambda := L
	iterLimit := vincentyMaxIterations

	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64
	for {
		sinLambda, cosLambda := math.Sin(lambda), math.Cos(lambda)
		sinSigma = math.Sqrt((cosU2*sinLambda)*(cosU2*sinLambda) +
			(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda))
		if sinSigma == 0 {
			// coincident points
			return Meters(0), nil
		}

		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha

		// equatorial line: cosSqAlpha = 0
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			cos2SigmaM = 0
		}

		C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		lambdaP := lambda
		lambda = L + (1-C)*f*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		iterLimit--
		if math.Abs(lambda-lambdaP) <= vincentyTolerance || iterLimit <= 0 {
			break
		}
	}

	if iterLimit == 0 {
		return Distance{}, &ErrNotConverged{From: from, To: to, Iterations: vincentyMaxIterations}
	}

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return Meters(b * A * (sigma - deltaSigma)), nil
}

// Heading returns the initial bearing from one position toward another, in
// degrees clockwise from north within [0, 360).
func Heading(from, to Position) float64 {
	lat1 := Deg2Rad(from.Latitude())
	lat2 := Deg2Rad(to.Latitude())
	dLng := Deg2Rad(to.Longitude() - from.Longitude())

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	return math.Mod(Rad2Deg(math.Atan2(y, x))+360, 360)
}

// Midpoint returns the point halfway along the great circle between two positions.
func Midpoint(from, to Position) Position {
	lat1 := Deg2Rad(from.Latitude())
	lng1 := Deg2Rad(from.Longitude())
	lat2 := Deg2Rad(to.Latitude())
	dLng := Deg2Rad(to.Longitude() - from.Longitude())

	bx := math.Cos(lat2) * math.Cos(dLng)
	by := math.Cos(lat2) * math.Sin(dLng)

	lat3 := math.Atan2(math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by))
	lng3 := lng1 + math.Atan2(by, math.Cos(lat1)+bx)

	return NewLatLng(Rad2Deg(lat3), NormalizeLongitude(Rad2Deg(lng3)))
}

// Endpoint returns the position reached by travelling the given distance from
// start along the great circle with the given initial heading (degrees).
func Endpoint(start Position, heading float64, distance Distance) Position {
	lat1 := Deg2Rad(start.Latitude())
	lng1 := Deg2Rad(start.Longitude())
	theta := Deg2Rad(heading)
	delta := distance.Meters() / EarthRadius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	lng2 := lng1 + math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return NewLatLng(Rad2Deg(lat2), NormalizeLongitude(Rad2Deg(lng2)))
}

// Expand grows a bounding box outward by distance in every direction.
func Expand(bounds BoundingBox, distance Distance) BoundingBox {
	return transformBounds(bounds, distance.Meters())
}

// Shrink pulls a bounding box inward by distance from every direction.
//
// If the box would invert, the result is a zero-size box at the original center.
func Shrink(bounds BoundingBox, distance Distance) BoundingBox {
	shrunk := transformBounds(bounds, -distance.Meters())
	if shrunk.southWest.Latitude() > shrunk.northEast.Latitude() {
		center := bounds.Center()
		return BoundingBox{southWest: center, northEast: center}
	}
	return shrunk
}

// transformBounds moves each edge outward by meters (inward when negative).
// The result may have an inverted latitude range; Shrink handles that case.
func transformBounds(bounds BoundingBox, meters float64) BoundingBox {
	swLat := Deg2Rad(bounds.southWest.Latitude())
	swLng := Deg2Rad(bounds.southWest.Longitude())
	neLat := Deg2Rad(bounds.northEast.Latitude())
	neLng := Deg2Rad(bounds.northEast.Longitude())

	angular := meters / EarthRadius

	minLat := swLat - angular
	maxLat := neLat + angular
	minLng := swLng - deltaLongitude(angular, swLat)
	maxLng := neLng + deltaLongitude(angular, neLat)

	return BoundingBox{
		southWest: NewLatLng(Rad2Deg(minLat), Rad2Deg(minLng)),
		northEast: NewLatLng(Rad2Deg(maxLat), Rad2Deg(maxLng)),
	}
}

// deltaLongitude is the longitude offset matching an angular distance at lat.
// Near the poles the ratio leaves asin's domain; the offset saturates at a
// quarter turn in that case.
func deltaLongitude(angular, lat float64) float64 {
	ratio := math.Sin(angular) / math.Cos(lat)
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	return math.Asin(ratio)
}

package wkt

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/beetlebugorg/geokit/pkg/geometry"
)

var (
	taggedPattern = regexp.MustCompile(`(?s)^\s*(\w+)\s*\((.*)\)\s*$`)
	emptyPattern  = regexp.MustCompile(`(?i)^\s*(\w+)\s+EMPTY\s*$`)

	// ring and line separator: "),("
	ringSeparator = regexp.MustCompile(`\)\s*,\s*\(`)
	// polygon separator inside a multipolygon: ")),(("
	polygonSeparator = regexp.MustCompile(`\)\s*\)\s*,\s*\(\s*\(`)

	outerParens  = regexp.MustCompile(`(?s)^\s*\((.*)\)\s*$`)
	doubleParens = regexp.MustCompile(`(?s)^\s*\(\s*\((.*)\)\s*\)\s*$`)
)

// ReverseTransform parses WKT text. It returns false for text that does not
// describe a valid geometry.
func (c *Codec) ReverseTransform(text string) (geometry.Geometry, bool) {
	return parse(text)
}

func parse(text string) (geometry.Geometry, bool) {
	if m := emptyPattern.FindStringSubmatch(text); m != nil {
		return parseBody(strings.ToUpper(m[1]), "")
	}
	m := taggedPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return parseBody(strings.ToUpper(m[1]), m[2])
}

func parseBody(keyword, body string) (geometry.Geometry, bool) {
	empty := strings.TrimSpace(body) == ""

	switch keyword {
	case "POINT":
		p, ok := parsePoint(body)
		if !ok {
			return nil, false
		}
		return p, true

	case "LINESTRING":
		points, ok := parsePoints(body)
		if !ok {
			return nil, false
		}
		l, err := geometry.NewLineString(points)
		if err != nil {
			return nil, false
		}
		return l, true

	case "LINEARRING":
		points, ok := parsePoints(body)
		if !ok {
			return nil, false
		}
		r, err := geometry.NewLinearRing(points)
		if err != nil {
			return nil, false
		}
		return r, true

	case "POLYGON":
		p, ok := parsePolygon(body)
		if !ok {
			return nil, false
		}
		return p, true

	case "MULTIPOINT":
		if empty {
			return geometry.NewMultiPoint(nil), true
		}
		flat := strings.NewReplacer("(", " ", ")", " ").Replace(body)
		points, ok := parsePoints(flat)
		if !ok {
			return nil, false
		}
		return geometry.NewMultiPoint(points), true

	case "MULTILINESTRING":
		var lines []*geometry.LineString
		if !empty {
			groups, ok := splitGroups(body)
			if !ok {
				return nil, false
			}
			for _, group := range groups {
				points, ok := parsePoints(group)
				if !ok {
					return nil, false
				}
				l, err := geometry.NewLineString(points)
				if err != nil {
					return nil, false
				}
				lines = append(lines, l)
			}
		}
		mls, err := geometry.NewMultiLineString(lines)
		if err != nil {
			return nil, false
		}
		return mls, true

	case "MULTIPOLYGON":
		var polygons []*geometry.Polygon
		if !empty {
			m := doubleParens.FindStringSubmatch(body)
			if m == nil {
				return nil, false
			}
			for _, part := range polygonSeparator.Split(m[1], -1) {
				p, ok := parsePolygon("(" + part + ")")
				if !ok {
					return nil, false
				}
				polygons = append(polygons, p)
			}
		}
		mp, err := geometry.NewMultiPolygon(polygons)
		if err != nil {
			return nil, false
		}
		return mp, true

	case "GEOMETRYCOLLECTION":
		var members []geometry.Geometry
		if !empty {
			for _, part := range splitMembers(body) {
				m, ok := parse(part)
				if !ok {
					return nil, false
				}
				members = append(members, m)
			}
		}
		gc, err := geometry.NewGeometryCollection(members)
		if err != nil {
			return nil, false
		}
		return gc, true
	}

	return nil, false
}

// parsePolygon parses a parenthesized ring list: (x y,...),(x y,...)
func parsePolygon(body string) (*geometry.Polygon, bool) {
	groups, ok := splitGroups(body)
	if !ok {
		return nil, false
	}
	rings := make([]*geometry.LinearRing, 0, len(groups))
	for _, group := range groups {
		points, ok := parsePoints(group)
		if !ok {
			return nil, false
		}
		r, err := geometry.NewLinearRing(points)
		if err != nil {
			return nil, false
		}
		rings = append(rings, r)
	}
	p, err := geometry.NewPolygon(rings)
	if err != nil {
		return nil, false
	}
	return p, true
}

// splitGroups splits "(a),(b)" into "a" and "b".
func splitGroups(body string) ([]string, bool) {
	m := outerParens.FindStringSubmatch(body)
	if m == nil {
		return nil, false
	}
	return ringSeparator.Split(m[1], -1), true
}

// splitMembers splits a collection body at top-level commas that are
// followed by a type keyword.
func splitMembers(body string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 && nextIsLetter(body[i+1:]) {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, body[start:])
}

func nextIsLetter(s string) bool {
	s = strings.TrimLeft(s, " \t\r\n")
	if s == "" {
		return false
	}
	ch := s[0]
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// parsePoints parses comma-separated coordinate pairs.
func parsePoints(body string) ([]geometry.Point, bool) {
	if strings.TrimSpace(body) == "" {
		return nil, false
	}
	pairs := strings.Split(body, ",")
	points := make([]geometry.Point, 0, len(pairs))
	for _, pair := range pairs {
		p, ok := parsePoint(pair)
		if !ok {
			return nil, false
		}
		points = append(points, p)
	}
	return points, true
}

// parsePoint parses "x y". Any run of whitespace separates the ordinates.
func parsePoint(s string) (geometry.Point, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return geometry.Point{}, false
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return geometry.Point{}, false
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return geometry.Point{}, false
	}
	return geometry.NewPoint(x, y), true
}

// Package cluster groups nearby positions into radius-based clusters.
//
// Each cluster is anchored at its first position. A position joins the
// nearest existing cluster whose search area (the anchor expanded by the
// radius in every direction) contains it; otherwise it starts a new cluster.
// Candidate clusters are found through an R-tree over the search areas.
//
// Example:
//
//	c, err := cluster.New(cluster.Options{Radius: geokit.Meters(500)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, cl := range c.Cluster(positions) {
//	    fmt.Printf("%s: %d positions\n", cl.Center(), cl.Len())
//	}
package cluster

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/geokit/pkg/geokit"
)

const (
	// R-tree branching (2D, min=25 children, max=50 children)
	treeMinChildren = 25
	treeMaxChildren = 50

	// rtreego rejects zero-length rectangles.
	minRectLength = 1e-9
)

// Options controls clustering.
type Options struct {
	// Radius is the maximum distance, per axis, from a cluster's anchor to
	// any of its members.
	Radius geokit.Distance
}

// DefaultOptions returns a 1 km radius.
func DefaultOptions() Options {
	return Options{Radius: geokit.Meters(1000)}
}

// Cluster is a group of positions.
type Cluster struct {
	center    geokit.Position
	bounds    geokit.BoundingBox
	area      geokit.BoundingBox
	positions []geokit.Position
	order     int
}

// Center returns the anchor position, the first member added.
func (c *Cluster) Center() geokit.Position { return c.center }

// Bounds returns the smallest box containing every member.
func (c *Cluster) Bounds() geokit.BoundingBox { return c.bounds }

// Positions returns the members in insertion order.
func (c *Cluster) Positions() []geokit.Position {
	return append([]geokit.Position(nil), c.positions...)
}

// Len returns the number of members.
func (c *Cluster) Len() int { return len(c.positions) }

func (c *Cluster) add(p geokit.Position) {
	c.positions = append(c.positions, p)
	c.bounds = c.bounds.Extend(p)
}

// areaEntry indexes a cluster's search area.
//
// Longitudes are unwrapped so that x runs from the area's west edge eastward
// without wrapping; an area crossing the antimeridian extends past 180.
type areaEntry struct {
	cluster *Cluster
	rect    rtreego.Rect
}

// Bounds method for rtreego.Spatial interface.
func (e *areaEntry) Bounds() rtreego.Rect {
	return e.rect
}

// Clusterer groups positions. A Clusterer must not be used by concurrent
// Cluster calls.
type Clusterer struct {
	opts Options
	tree *rtreego.Rtree
}

// New creates a clusterer.
func New(opts Options) (*Clusterer, error) {
	if !(opts.Radius.Meters() > 0) {
		return nil, &ErrInvalidRadius{Radius: opts.Radius}
	}
	return &Clusterer{opts: opts}, nil
}

// Cluster groups positions in input order.
func (c *Clusterer) Cluster(positions []geokit.Position) []*Cluster {
	c.tree = rtreego.NewTree(2, treeMinChildren, treeMaxChildren)

	var clusters []*Cluster
	for _, p := range positions {
		if target := c.nearest(p); target != nil {
			target.add(p)
			continue
		}

		point := geokit.NewLatLng(p.Latitude(), p.Longitude())
		bounds, _ := geokit.NewBoundingBox(point, point)
		cl := &Cluster{
			center:    p,
			bounds:    bounds,
			area:      geokit.Expand(bounds, c.opts.Radius),
			positions: []geokit.Position{p},
			order:     len(clusters),
		}
		clusters = append(clusters, cl)
		c.tree.Insert(&areaEntry{cluster: cl, rect: areaRect(cl.area)})
	}
	return clusters
}

// nearest returns the closest cluster whose search area contains p, or nil.
func (c *Clusterer) nearest(p geokit.Position) *Cluster {
	lng, lat := p.Longitude(), p.Latitude()

	seen := make(map[*Cluster]bool)
	var candidates []*Cluster
	for _, x := range []float64{lng, lng + 360} {
		query := rtreego.Point{x, lat}.ToRect(minRectLength)
		for _, spatial := range c.tree.SearchIntersect(query) {
			cl := spatial.(*areaEntry).cluster
			if seen[cl] || !cl.area.Contains(p) {
				continue
			}
			seen[cl] = true
			candidates = append(candidates, cl)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		di := geokit.DistanceHaversine(candidates[i].center, p).Meters()
		dj := geokit.DistanceHaversine(candidates[j].center, p).Meters()
		if di != dj {
			return di < dj
		}
		return candidates[i].order < candidates[j].order
	})
	return candidates[0]
}

// areaRect converts a search area to an R-tree rectangle with unwrapped
// longitudes.
func areaRect(area geokit.BoundingBox) rtreego.Rect {
	sw := area.SouthWest()
	point := rtreego.Point{sw.Longitude(), sw.Latitude()}
	lengths := []float64{
		math.Max(area.LongitudeSpan(), minRectLength),
		math.Max(area.LatitudeSpan(), minRectLength),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

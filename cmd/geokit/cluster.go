package main

import (
	"bufio"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/beetlebugorg/geokit/pkg/cluster"
	"github.com/beetlebugorg/geokit/pkg/geokit"
)

type clusterCommand struct {
	app *app

	Radius string `short:"r" long:"radius" description:"Cluster radius, e.g. 500m (overrides config)"`

	Args struct {
		Positions []string `positional-arg-name:"POSITION" description:"Positions (lat,lng); read from stdin if none"`
	} `positional-args:"yes"`
}

type clusterResult struct {
	Center    geokit.Position    `json:"center" yaml:"center"`
	Bounds    geokit.BoundingBox `json:"bounds" yaml:"bounds"`
	Count     int                `json:"count" yaml:"count"`
	Positions []geokit.Position  `json:"positions" yaml:"positions"`
}

func (c *clusterCommand) Execute(args []string) error {
	radius := c.app.cfg.Radius
	if c.Radius != "" {
		var err error
		if radius, err = geokit.ParseDistance(c.Radius); err != nil {
			return err
		}
	}

	clusterer, err := cluster.New(cluster.Options{Radius: radius})
	if err != nil {
		return err
	}

	lines := c.Args.Positions
	if len(lines) == 0 {
		scanner := bufio.NewScanner(c.app.in)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	positions := make([]geokit.Position, 0, len(lines))
	for _, line := range lines {
		p, err := geokit.ParsePosition(line)
		if err != nil {
			return err
		}
		positions = append(positions, p)
	}

	clusters := clusterer.Cluster(positions)
	log.Debug().
		Int("positions", len(positions)).
		Int("clusters", len(clusters)).
		Stringer("radius", radius).
		Msg("Clustering complete")

	results := make([]clusterResult, 0, len(clusters))
	for _, cl := range clusters {
		results = append(results, clusterResult{
			Center:    cl.Center(),
			Bounds:    cl.Bounds(),
			Count:     cl.Len(),
			Positions: cl.Positions(),
		})
	}
	return c.app.print(results)
}

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/beetlebugorg/geokit/internal/config"
	"github.com/beetlebugorg/geokit/pkg/geokit"
)

type pairArgs struct {
	From string `positional-arg-name:"FROM" description:"Start position (lat,lng)" required:"true"`
	To   string `positional-arg-name:"TO" description:"End position (lat,lng)" required:"true"`
}

func (p pairArgs) parse() (geokit.Position, geokit.Position, error) {
	from, err := geokit.ParsePosition(p.From)
	if err != nil {
		return geokit.Position{}, geokit.Position{}, err
	}
	to, err := geokit.ParsePosition(p.To)
	if err != nil {
		return geokit.Position{}, geokit.Position{}, err
	}
	return from, to, nil
}

type distanceCommand struct {
	app *app

	Unit   string `short:"u" long:"unit" description:"Output unit (overrides config)"`
	Method string `short:"m" long:"method" description:"Distance formula (overrides config)" choice:"haversine" choice:"vincenty"`

	Args pairArgs `positional-args:"yes" required:"yes"`
}

type distanceResult struct {
	From     geokit.Position `json:"from" yaml:"from"`
	To       geokit.Position `json:"to" yaml:"to"`
	Distance float64         `json:"distance" yaml:"distance"`
	Unit     geokit.Unit     `json:"unit" yaml:"unit"`
	Method   string          `json:"method" yaml:"method"`
}

func (c *distanceCommand) Execute(args []string) error {
	from, to, err := c.Args.parse()
	if err != nil {
		return err
	}

	unit := c.app.cfg.DistanceUnit()
	if c.Unit != "" {
		if unit, err = geokit.ResolveUnit(c.Unit); err != nil {
			return err
		}
	}
	method := c.app.cfg.Method
	if c.Method != "" {
		method = c.Method
	}

	var d geokit.Distance
	switch method {
	case config.MethodVincenty:
		if d, err = geokit.DistanceVincenty(from, to); err != nil {
			return err
		}
	default:
		d = geokit.DistanceHaversine(from, to)
	}

	log.Debug().
		Stringer("from", from).
		Stringer("to", to).
		Float64("meters", d.Meters()).
		Msg("Distance calculated")

	return c.app.print(distanceResult{
		From:     from,
		To:       to,
		Distance: d.In(unit),
		Unit:     unit,
		Method:   method,
	})
}

type headingCommand struct {
	app  *app
	Args pairArgs `positional-args:"yes" required:"yes"`
}

func (c *headingCommand) Execute(args []string) error {
	from, to, err := c.Args.parse()
	if err != nil {
		return err
	}
	return c.app.print(map[string]any{
		"from":    from,
		"to":      to,
		"heading": geokit.Heading(from, to),
	})
}

type midpointCommand struct {
	app  *app
	Args pairArgs `positional-args:"yes" required:"yes"`
}

func (c *midpointCommand) Execute(args []string) error {
	from, to, err := c.Args.parse()
	if err != nil {
		return err
	}
	return c.app.print(map[string]any{
		"from":     from,
		"to":       to,
		"midpoint": geokit.Midpoint(from, to),
	})
}

type endpointCommand struct {
	app *app

	Args struct {
		Start    string  `positional-arg-name:"START" description:"Start position (lat,lng)"`
		Heading  float64 `positional-arg-name:"HEADING" description:"Initial heading in degrees"`
		Distance string  `positional-arg-name:"DISTANCE" description:"Distance, e.g. 10km"`
	} `positional-args:"yes" required:"yes"`
}

func (c *endpointCommand) Execute(args []string) error {
	start, err := geokit.ParsePosition(c.Args.Start)
	if err != nil {
		return err
	}
	d, err := geokit.ParseDistance(c.Args.Distance)
	if err != nil {
		return err
	}
	return c.app.print(map[string]any{
		"start":    start,
		"heading":  c.Args.Heading,
		"distance": d,
		"endpoint": geokit.Endpoint(start, c.Args.Heading, d),
	})
}

// boundsCommand serves both expand and shrink.
type boundsCommand struct {
	app    *app
	shrink bool

	Args struct {
		Bounds   string `positional-arg-name:"BBOX" description:"Bounding box (south,west,north,east)"`
		Distance string `positional-arg-name:"DISTANCE" description:"Distance, e.g. 500m"`
	} `positional-args:"yes" required:"yes"`
}

func (c *boundsCommand) Execute(args []string) error {
	bounds, err := geokit.ParseBoundingBox(c.Args.Bounds)
	if err != nil {
		return err
	}
	d, err := geokit.ParseDistance(c.Args.Distance)
	if err != nil {
		return err
	}
	if d.Meters() < 0 {
		return fmt.Errorf("distance must not be negative, got %s", d)
	}

	result := geokit.Expand(bounds, d)
	if c.shrink {
		result = geokit.Shrink(bounds, d)
	}
	return c.app.print(map[string]any{
		"input":  bounds,
		"result": result,
		"center": result.Center(),
	})
}

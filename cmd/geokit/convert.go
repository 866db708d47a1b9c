package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/beetlebugorg/geokit/internal/batch"
	"github.com/beetlebugorg/geokit/pkg/geometry"
	"github.com/beetlebugorg/geokit/pkg/geometry/wkb"
	"github.com/beetlebugorg/geokit/pkg/geometry/wkt"
)

type convertCommand struct {
	app *app

	From      string `long:"from" description:"Input encoding" choice:"wkt" choice:"wkb" choice:"ewkb" choice:"mysql" default:"wkt"`
	To        string `long:"to" description:"Output encoding" choice:"wkt" choice:"wkb" choice:"ewkb" choice:"mysql" default:"wkb"`
	StrictOGC bool   `long:"strict-ogc" description:"Write MULTIPOINT((x y),...) instead of the PostGIS form"`
	Validate  bool   `long:"validate" description:"Reject coordinates outside longitude [-180, 180] and latitude [-90, 90]"`
	Lines     bool   `short:"l" long:"lines" description:"Treat each input line as a separate geometry"`
	Workers   int    `short:"w" long:"workers" description:"Parallel workers for --lines (0 = one per CPU)" default:"0"`

	Args struct {
		Input string `positional-arg-name:"INPUT" description:"Geometry text; read from stdin if empty"`
	} `positional-args:"yes"`
}

type convertResult struct {
	Type     string `json:"type" yaml:"type"`
	Encoding string `json:"encoding" yaml:"encoding"`
	Output   string `json:"output" yaml:"output"`
	BBox     string `json:"bbox,omitempty" yaml:"bbox,omitempty"`
}

// binaryCodecs maps binary encodings to hex codecs.
var binaryCodecs = map[string]func() *wkb.HexCodec{
	"wkb":   wkb.NewWKBHex,
	"ewkb":  wkb.NewEWKBHex,
	"mysql": func() *wkb.HexCodec { return wkb.NewHex(wkb.NewMySQL()) },
}

func (c *convertCommand) Execute(args []string) error {
	input := c.Args.Input
	if input == "" {
		data, err := io.ReadAll(c.app.in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = string(data)
	}

	if !c.Lines {
		result, err := c.convertOne(input)
		if err != nil {
			return err
		}
		return c.app.print(result)
	}

	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	opts := batch.DefaultOptions()
	opts.Workers = c.Workers
	items, errs := batch.Run(lines, c.convertOne, opts)
	for _, err := range errs {
		log.Warn().Err(err).Msg("Skipping geometry")
	}
	log.Debug().
		Int("lines", len(lines)).
		Int("converted", len(items)).
		Int("failed", len(errs)).
		Msg("Batch conversion complete")

	results := make([]convertResult, 0, len(items))
	for _, item := range items {
		results = append(results, item.Value)
	}
	return c.app.print(results)
}

// convertOne decodes and re-encodes a single geometry. It is safe for
// concurrent use.
func (c *convertCommand) convertOne(input string) (convertResult, error) {
	g, err := c.decode(strings.TrimSpace(input))
	if err != nil {
		return convertResult{}, err
	}
	if c.Validate {
		if err := geometry.ValidateGeographic(g); err != nil {
			return convertResult{}, err
		}
	}
	output, err := c.encode(g)
	if err != nil {
		return convertResult{}, err
	}

	result := convertResult{
		Type:     g.Type().String(),
		Encoding: c.To,
		Output:   output,
	}
	if box, ok := geometry.Envelope(g); ok {
		result.BBox = box.String()
	}
	return result, nil
}

func (c *convertCommand) decode(input string) (geometry.Geometry, error) {
	if c.From == "wkt" {
		g, ok := wkt.Unmarshal(input)
		if !ok {
			return nil, fmt.Errorf("unparseable WKT: %q", input)
		}
		return g, nil
	}

	newCodec, ok := binaryCodecs[c.From]
	if !ok {
		return nil, fmt.Errorf("unknown input encoding %q", c.From)
	}
	return newCodec().ReverseTransform(input)
}

func (c *convertCommand) encode(g geometry.Geometry) (string, error) {
	if c.To == "wkt" {
		opts := wkt.DefaultOptions()
		opts.StrictOGCMultiPoint = c.StrictOGC || c.app.cfg.WKT.StrictOGCMultiPoint
		text, ok := wkt.New(opts).Transform(g)
		if !ok {
			return "", fmt.Errorf("cannot render %v as WKT", g.Type())
		}
		return text, nil
	}

	newCodec, ok := binaryCodecs[c.To]
	if !ok {
		return "", fmt.Errorf("unknown output encoding %q", c.To)
	}
	return newCodec().Transform(g)
}

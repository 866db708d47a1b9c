// Command geokit exposes the geodesy math and geometry codecs on the command line.
//
// Positions are written "lat,lng" and bounding boxes "south,west,north,east".
// Put "--" before positional arguments that start with a minus sign:
//
//	geokit distance 52.52,13.405 48.8566,2.3522
//	geokit --format yaml expand -- -10,-10,10,10 5km
//	geokit convert --from wkt --to wkb "POINT(1 1)"
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/geokit/internal/config"
	"github.com/beetlebugorg/geokit/internal/logger"
)

// Options are the global options shared by every command.
type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"GEOKIT_CONFIG" description:"Path to YAML configuration file"`
	Format     string `short:"f" long:"format" env:"GEOKIT_FORMAT" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

// app carries state shared between the parser and the commands.
type app struct {
	opts Options
	cfg  *config.Config
	in   io.Reader
	out  io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagsErr.Message)
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("Command failed")
	}
}

// run parses args and executes the selected command.
func run(args []string, in io.Reader, out io.Writer) error {
	a := &app{in: in, out: out}
	parser := newParser(a)
	_, err := parser.ParseArgs(args)
	return err
}

func newParser(a *app) *flags.Parser {
	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		a.opts.Logger.Setup()

		cfg, err := config.Load(a.opts.ConfigFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
		log.Debug().
			Str("config", a.opts.ConfigFile).
			Str("unit", cfg.Unit).
			Str("method", cfg.Method).
			Msg("Configuration loaded")

		return command.Execute(args)
	}

	mustAddCommand(parser, "distance", "Distance between two positions",
		"Calculate the distance between two lat,lng positions.", &distanceCommand{app: a})
	mustAddCommand(parser, "heading", "Initial heading between two positions",
		"Calculate the initial great-circle heading in degrees [0, 360).", &headingCommand{app: a})
	mustAddCommand(parser, "midpoint", "Great-circle midpoint",
		"Calculate the great-circle midpoint of two positions.", &midpointCommand{app: a})
	mustAddCommand(parser, "endpoint", "Destination point",
		"Project a position along a heading for a distance.", &endpointCommand{app: a})
	mustAddCommand(parser, "expand", "Grow a bounding box",
		"Grow a south,west,north,east bounding box by a distance in every direction.",
		&boundsCommand{app: a})
	mustAddCommand(parser, "shrink", "Shrink a bounding box",
		"Shrink a south,west,north,east bounding box by a distance from every direction.",
		&boundsCommand{app: a, shrink: true})
	mustAddCommand(parser, "convert", "Convert geometry encodings",
		"Convert a geometry between WKT and hex-encoded WKB, EWKB and MySQL formats.",
		&convertCommand{app: a})
	mustAddCommand(parser, "cluster", "Cluster positions",
		"Group lat,lng positions (arguments or one per line on stdin) by radius.",
		&clusterCommand{app: a})

	return parser
}

func mustAddCommand(parser *flags.Parser, name, short, long string, data flags.Commander) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}

// print writes v in the selected output format.
func (a *app) print(v any) error {
	var (
		data []byte
		err  error
	)
	if a.opts.Format == "yaml" {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}

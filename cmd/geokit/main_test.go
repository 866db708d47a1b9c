package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/geokit/pkg/geokit"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func decodeJSON(t *testing.T, data string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		t.Fatalf("Invalid JSON output %q: %v", data, err)
	}
	return m
}

func TestDistanceCommand(t *testing.T) {
	out, err := runCommand(t, "", "distance", "--unit", "km", "52.52,13.405", "48.8566,2.3522")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	m := decodeJSON(t, out)
	d, _ := m["distance"].(float64)
	if d < 870 || d > 885 {
		t.Errorf("Expected Berlin-Paris around 877 km, got %v", d)
	}
	if m["unit"] != "kilometers" || m["method"] != "haversine" {
		t.Errorf("Unexpected unit/method: %v/%v", m["unit"], m["method"])
	}
	if m["from"] != "52.52,13.405" {
		t.Errorf("Expected from 52.52,13.405, got %v", m["from"])
	}
}

func TestDistanceCommandVincenty(t *testing.T) {
	if _, err := runCommand(t, "", "distance", "--method", "vincenty", "0,0", "0,180"); err == nil {
		t.Error("Expected convergence error for antipodal points")
	}

	out, err := runCommand(t, "", "distance", "-m", "vincenty", "-u", "m", "0,0", "0,1")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	d, _ := decodeJSON(t, out)["distance"].(float64)
	if math.Abs(d-111319.491) > 0.01 {
		t.Errorf("Expected 111319.491 m, got %v", d)
	}
}

func TestHeadingAndMidpointCommands(t *testing.T) {
	out, err := runCommand(t, "", "heading", "0,0", "10,0")
	if err != nil {
		t.Fatalf("heading failed: %v", err)
	}
	if h := decodeJSON(t, out)["heading"]; h != 0.0 {
		t.Errorf("Expected heading 0, got %v", h)
	}

	out, err = runCommand(t, "", "midpoint", "0,0", "0,90")
	if err != nil {
		t.Fatalf("midpoint failed: %v", err)
	}
	if mp := decodeJSON(t, out)["midpoint"]; mp != "0,45" {
		t.Errorf("Expected midpoint 0,45, got %v", mp)
	}
}

func TestEndpointCommand(t *testing.T) {
	out, err := runCommand(t, "", "endpoint", "0,0", "90", "0m")
	if err != nil {
		t.Fatalf("endpoint failed: %v", err)
	}
	m := decodeJSON(t, out)
	if m["endpoint"] != "0,0" {
		t.Errorf("Expected endpoint 0,0, got %v", m["endpoint"])
	}
	if m["distance"] != "0m" {
		t.Errorf("Expected distance 0m, got %v", m["distance"])
	}
}

func TestBoundsCommandsYAML(t *testing.T) {
	out, err := runCommand(t, "", "--format", "yaml", "expand", "--", "-1,-1,1,1", "10km")
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}

	var m map[string]string
	if err := yaml.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("Invalid YAML output %q: %v", out, err)
	}
	if m["input"] != "-1,-1,1,1" {
		t.Errorf("Expected input -1,-1,1,1, got %q", m["input"])
	}
	expanded, err := geokit.ParseBoundingBox(m["result"])
	if err != nil {
		t.Fatalf("Invalid result box %q: %v", m["result"], err)
	}
	for _, corner := range []geokit.Position{geokit.NewLatLng(-1, -1), geokit.NewLatLng(1, 1)} {
		if !expanded.Contains(corner) {
			t.Errorf("Expected %s to contain %s", expanded, corner)
		}
	}

	out, err = runCommand(t, "", "shrink", "0,0,1,1", "500km")
	if err != nil {
		t.Fatalf("shrink failed: %v", err)
	}
	if r := decodeJSON(t, out)["result"]; r != "0.5,0.5,0.5,0.5" {
		t.Errorf("Expected collapsed box at center, got %v", r)
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
		typ   string
	}{
		{
			name: "wkt to wkb",
			args: []string{"convert", "--from", "wkt", "--to", "wkb", "POINT(1 1)"},
			want: "0101000000000000000000f03f000000000000f03f",
			typ:  "Point",
		},
		{
			name:  "ewkb from stdin to wkt",
			stdin: "0101000020e6100000000000000000f03f000000000000f03f\n",
			args:  []string{"convert", "--from", "ewkb", "--to", "wkt"},
			want:  "POINT(1 1)",
			typ:   "Point",
		},
		{
			name: "mysql prefix",
			args: []string{"convert", "--to", "mysql", "POINT(1 1)"},
			want: "000000000101000000000000000000f03f000000000000f03f",
			typ:  "Point",
		},
		{
			name: "strict multipoint",
			args: []string{"convert", "--to", "wkt", "--strict-ogc", "MULTIPOINT(1 2,3 4)"},
			want: "MULTIPOINT((1 2),(3 4))",
			typ:  "MultiPoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			m := decodeJSON(t, out)
			if m["output"] != tt.want {
				t.Errorf("Expected %s, got %v", tt.want, m["output"])
			}
			if m["type"] != tt.typ {
				t.Errorf("Expected type %s, got %v", tt.typ, m["type"])
			}
		})
	}

	if _, err := runCommand(t, "", "convert", "POINT(1)"); err == nil {
		t.Error("Expected error for unparseable WKT")
	}
	if _, err := runCommand(t, "", "convert", "--validate", "POINT(200 10)"); err == nil {
		t.Error("Expected error for out-of-range longitude with --validate")
	}
	if _, err := runCommand(t, "", "convert", "POINT(200 10)"); err != nil {
		t.Errorf("Expected raw coordinates to pass without --validate, got %v", err)
	}
}

func TestConvertLines(t *testing.T) {
	stdin := "POINT(1 1)\nLINESTRING(0 0,1 1)\n\nPOINT(oops)\nMULTIPOINT(1 2,3 4)\n"
	out, err := runCommand(t, stdin, "convert", "--lines", "--workers", "2", "--to", "wkb")
	if err != nil {
		t.Fatalf("convert --lines failed: %v", err)
	}

	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("Invalid JSON output %q: %v", out, err)
	}
	want := []string{"Point", "LineString", "MultiPoint"}
	if len(results) != len(want) {
		t.Fatalf("Expected %d results, got %d", len(want), len(results))
	}
	for i, typ := range want {
		if results[i]["type"] != typ {
			t.Errorf("Result %d: expected %s, got %v", i, typ, results[i]["type"])
		}
	}
	if results[0]["output"] != "0101000000000000000000f03f000000000000f03f" {
		t.Errorf("Unexpected first output %v", results[0]["output"])
	}
}

func TestClusterCommand(t *testing.T) {
	stdin := "42.3601,-71.0589\n42.3605,-71.0580\n\n42.2626,-71.8023\n"
	out, err := runCommand(t, stdin, "cluster", "--radius", "1km")
	if err != nil {
		t.Fatalf("cluster failed: %v", err)
	}

	var clusters []map[string]any
	if err := json.Unmarshal([]byte(out), &clusters); err != nil {
		t.Fatalf("Invalid JSON output %q: %v", out, err)
	}
	if len(clusters) != 2 {
		t.Fatalf("Expected 2 clusters, got %d", len(clusters))
	}
	if clusters[0]["count"] != 2.0 {
		t.Errorf("Expected first cluster count 2, got %v", clusters[0]["count"])
	}

	if _, err := runCommand(t, "", "cluster", "--radius", "0m", "1,1"); err == nil {
		t.Error("Expected error for zero radius")
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geokit.yaml")
	if err := os.WriteFile(path, []byte("unit: mi\nmethod: vincenty\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := runCommand(t, "", "--config", path, "distance", "0,0", "0,1")
	if err != nil {
		t.Fatalf("distance failed: %v", err)
	}
	m := decodeJSON(t, out)
	if m["unit"] != "miles" || m["method"] != "vincenty" {
		t.Errorf("Expected miles/vincenty from config, got %v/%v", m["unit"], m["method"])
	}

	if _, err := runCommand(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "heading", "0,0", "1,1"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestInvalidArguments(t *testing.T) {
	tests := [][]string{
		{"distance", "not-a-position", "1,1"},
		{"distance", "1,1"},
		{"distance", "--unit", "furlong", "0,0", "1,1"},
		{"expand", "1,2,3", "5km"},
		{"endpoint", "0,0", "90", "far"},
		{"teleport"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := runCommand(t, "", args...); err == nil {
				t.Errorf("Expected error for %v", args)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	_, err := runCommand(t, "", "--help")
	var flagsErr *flags.Error
	if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
		t.Errorf("Expected help error, got %v", err)
	}
}

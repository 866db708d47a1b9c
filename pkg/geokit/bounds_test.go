package geokit

import (
	"errors"
	"testing"
)

// TestNewBoundingBox tests corner validation
func TestNewBoundingBox(t *testing.T) {
	tests := []struct {
		name    string
		sw, ne  Position
		wantErr bool
	}{
		{"valid", NewLatLng(10, 20), NewLatLng(11, 21), false},
		{"zero size", NewLatLng(10, 20), NewLatLng(10, 20), false},
		{"crosses antimeridian", NewLatLng(-10, 179), NewLatLng(10, -179), false},
		{"south of north", NewLatLng(11, 20), NewLatLng(10, 21), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoundingBox(tt.sw, tt.ne)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBoundingBox() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidBoundingBox
				if !errors.As(err, &invalid) {
					t.Errorf("Expected *ErrInvalidBoundingBox, got %T", err)
				}
			}
		})
	}
}

// TestBoundingBoxAntimeridian tests boxes that span the 180th meridian
func TestBoundingBoxAntimeridian(t *testing.T) {
	box, err := NewBoundingBox(NewLatLng(-10, 179), NewLatLng(10, -179))
	if err != nil {
		t.Fatalf("Failed to create bounding box: %v", err)
	}

	if !box.CrossesAntimeridian() {
		t.Error("Expected box to cross the antimeridian")
	}
	if span := box.LongitudeSpan(); span != 2 {
		t.Errorf("Expected longitude span 2, got %v", span)
	}
	if span := box.LatitudeSpan(); span != 20 {
		t.Errorf("Expected latitude span 20, got %v", span)
	}

	center := box.Center()
	if center.Longitude() != 180 || center.Latitude() != 0 {
		t.Errorf("Expected center 0,180, got %s", center)
	}

	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"east of antimeridian", NewLatLng(0, -179.5), true},
		{"west of antimeridian", NewLatLng(0, 179.5), true},
		{"on antimeridian", NewLatLng(0, 180), true},
		{"greenwich", NewLatLng(0, 0), false},
		{"too far north", NewLatLng(11, 180), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// TestBoundingBoxExtend tests growing a box to include a position
func TestBoundingBoxExtend(t *testing.T) {
	box, _ := NewBoundingBox(NewLatLng(0, 0), NewLatLng(10, 10))

	tests := []struct {
		name   string
		p      Position
		sw, ne Position
	}{
		{"inside", NewLatLng(5, 5), NewLatLng(0, 0), NewLatLng(10, 10)},
		{"north", NewLatLng(20, 5), NewLatLng(0, 0), NewLatLng(20, 10)},
		{"east", NewLatLng(5, 20), NewLatLng(0, 0), NewLatLng(10, 20)},
		{"west", NewLatLng(-5, -20), NewLatLng(-5, -20), NewLatLng(10, 10)},
		{"shorter westward", NewLatLng(5, -170), NewLatLng(0, -170), NewLatLng(10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := box.Extend(tt.p)
			if got.SouthWest() != tt.sw || got.NorthEast() != tt.ne {
				t.Errorf("Expected %s..%s, got %s", tt.sw, tt.ne, got)
			}
			if !got.Contains(tt.p) {
				t.Errorf("Expected extended box to contain %s", tt.p)
			}
		})
	}

	pacific, _ := NewBoundingBox(NewLatLng(0, 100), NewLatLng(10, 170))
	got := pacific.Extend(NewLatLng(5, -170))
	if !got.CrossesAntimeridian() {
		t.Errorf("Expected extension across the antimeridian, got %s", got)
	}
	if got.NorthEast().Longitude() != -170 || got.LongitudeSpan() != 90 {
		t.Errorf("Expected east edge -170 and span 90, got %s", got)
	}
}

// TestBoundingBoxUnion tests merging two boxes
func TestBoundingBoxUnion(t *testing.T) {
	a, _ := NewBoundingBox(NewLatLng(0, 0), NewLatLng(10, 10))
	b, _ := NewBoundingBox(NewLatLng(-5, 5), NewLatLng(5, 15))

	u := a.Union(b)
	if u.SouthWest() != NewLatLng(-5, 0) || u.NorthEast() != NewLatLng(10, 15) {
		t.Errorf("Expected -5,0..10,15, got %s", u)
	}

	east, _ := NewBoundingBox(NewLatLng(0, 175), NewLatLng(1, 178))
	west, _ := NewBoundingBox(NewLatLng(0, -178), NewLatLng(1, -175))
	wrapped := east.Union(west)
	if !wrapped.CrossesAntimeridian() {
		t.Errorf("Expected union across antimeridian, got %s", wrapped)
	}
	if wrapped.LongitudeSpan() != 10 {
		t.Errorf("Expected longitude span 10, got %v", wrapped.LongitudeSpan())
	}
}

// TestParseBoundingBox tests the south,west,north,east text form
func TestParseBoundingBox(t *testing.T) {
	box, err := ParseBoundingBox("10, 20, 11, 21")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if box.String() != "10,20,11,21" {
		t.Errorf("Expected 10,20,11,21, got %s", box)
	}

	for _, input := range []string{"", "1,2,3", "a,b,c,d", "11,20,10,21"} {
		if _, err := ParseBoundingBox(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

// TestBoundingBoxText tests the encoding.TextMarshaler round trip
func TestBoundingBoxText(t *testing.T) {
	box, _ := NewBoundingBox(NewLatLng(-10, 170), NewLatLng(10, -170))

	text, err := box.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "-10,170,10,-170" {
		t.Errorf("Expected -10,170,10,-170, got %s", text)
	}

	var back BoundingBox
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if back != box {
		t.Errorf("Expected %s, got %s", box, back)
	}

	if err := back.UnmarshalText([]byte("1,2")); err == nil {
		t.Error("Expected error for malformed text")
	}
}

package geokit

import (
	"testing"
)

// TestNormalizeLongitude tests wrapping into (-180, 180]
func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-181, 179},
		{360, 0},
		{540, 180},
		{-190, 170},
	}

	for _, tt := range tests {
		if got := NormalizeLongitude(tt.in); got != tt.want {
			t.Errorf("NormalizeLongitude(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestNormalizeLatitude tests clamping into [-90, 90]
func TestNormalizeLatitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{91, 90},
		{-95, -90},
		{45.5, 45.5},
	}

	for _, tt := range tests {
		if got := NormalizeLatitude(tt.in); got != tt.want {
			t.Errorf("NormalizeLatitude(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestPositionAccessors tests raw storage versus normalized reads
func TestPositionAccessors(t *testing.T) {
	p := NewPosition(190, 100)
	if p.X() != 190 || p.Y() != 100 {
		t.Errorf("Expected raw 190,100, got %v,%v", p.X(), p.Y())
	}
	if p.Longitude() != -170 {
		t.Errorf("Expected longitude -170, got %v", p.Longitude())
	}
	if p.Latitude() != 90 {
		t.Errorf("Expected latitude 90, got %v", p.Latitude())
	}

	if NewLatLng(1, 2) != NewPosition(2, 1) {
		t.Error("Expected NewLatLng(lat, lng) to equal NewPosition(lng, lat)")
	}
}

// TestParsePosition tests the lat,lng text form
func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		want    Position
		wantErr bool
	}{
		{"52.52,13.405", NewLatLng(52.52, 13.405), false},
		{" -33.5 , 151 ", NewLatLng(-33.5, 151), false},
		{"52.52", Position{}, true},
		{"x,1", Position{}, true},
		{"1,y", Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePosition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	var p Position
	if err := p.UnmarshalText([]byte("1,2")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if text, _ := p.MarshalText(); string(text) != "1,2" {
		t.Errorf("Expected 1,2, got %s", text)
	}
}

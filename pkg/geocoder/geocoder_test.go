package geocoder

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/beetlebugorg/geokit/pkg/geokit"
)

func fixed(p geokit.Position) Geocoder {
	return GeocoderFunc(func(ctx context.Context, q Query) (*Result, error) {
		return &Result{Location: p}, nil
	})
}

func failing(err error) Geocoder {
	return GeocoderFunc(func(ctx context.Context, q Query) (*Result, error) {
		return nil, err
	})
}

func TestQueryConstructors(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		kind     QueryKind
		expected string
	}{
		{"address", AddressQuery("1600 Amphitheatre Parkway"), QueryAddress, "1600 Amphitheatre Parkway"},
		{"reverse", ReverseQuery(geokit.NewLatLng(52.5, 13.4)), QueryReverse, "52.5,13.4"},
		{"ip", IPQuery("192.0.2.1"), QueryIP, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.query.Kind != tt.kind {
				t.Errorf("Expected kind %v, got %v", tt.kind, tt.query.Kind)
			}
			if tt.query.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.query.String())
			}
			if tt.query.Kind.String() != tt.name {
				t.Errorf("Expected kind name %q, got %q", tt.name, tt.query.Kind.String())
			}
		})
	}
}

func TestErrorMatchesNotFound(t *testing.T) {
	err := &Error{StatusCode: StatusNotFound, Message: "ZERO_RESULTS"}
	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected a 404 error to match ErrNotFound")
	}

	denied := &Error{StatusCode: 403, Message: "REQUEST_DENIED"}
	if errors.Is(denied, ErrNotFound) {
		t.Error("Expected a 403 error not to match ErrNotFound")
	}
	if denied.Error() != "geocoder: status 403: REQUEST_DENIED" {
		t.Errorf("Unexpected message: %s", denied.Error())
	}
}

func TestChainReturnsFirstSuccess(t *testing.T) {
	want := geokit.NewLatLng(40.7128, -74.006)
	var calls []int

	record := func(i int, g Geocoder) Geocoder {
		return GeocoderFunc(func(ctx context.Context, q Query) (*Result, error) {
			calls = append(calls, i)
			return g.Geocode(ctx, q)
		})
	}

	chain := NewChain(
		record(0, failing(&Error{StatusCode: 500, Message: "upstream"})),
		record(1, fixed(want)),
		record(2, fixed(geokit.NewLatLng(0, 0))),
	)

	result, err := chain.Geocode(context.Background(), AddressQuery("New York"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Location != want {
		t.Errorf("Expected %v, got %v", want, result.Location)
	}
	if len(calls) != 2 {
		t.Errorf("Expected 2 delegate calls, got %v", calls)
	}
}

func TestChainJoinsErrors(t *testing.T) {
	upstream := &Error{StatusCode: 503, Message: "unavailable"}
	chain := NewChain(
		failing(upstream),
		failing(ErrNotFound),
		GeocoderFunc(func(ctx context.Context, q Query) (*Result, error) {
			return nil, nil
		}),
	)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	_, err := chain.Geocode(ctx, IPQuery("192.0.2.1"))
	if err == nil {
		t.Fatal("Expected error")
	}

	var e *Error
	if !errors.As(err, &e) || e.StatusCode != 503 {
		t.Errorf("Expected first delegate error in chain, got %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected joined error to match ErrNotFound")
	}
	if strings.Count(err.Error(), "delegate") != 3 {
		t.Errorf("Expected 3 delegate errors, got %q", err.Error())
	}

	if n := strings.Count(buf.String(), "Geocoder delegate failed"); n != 3 {
		t.Errorf("Expected 3 debug log lines, got %d: %s", n, buf.String())
	}
}

func TestChainStopsOnCancelledContext(t *testing.T) {
	called := false
	chain := NewChain(GeocoderFunc(func(ctx context.Context, q Query) (*Result, error) {
		called = true
		return &Result{}, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := chain.Geocode(ctx, AddressQuery("Berlin"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("Expected delegate not to be called")
	}
}

func TestEmptyChain(t *testing.T) {
	_, err := NewChain().Geocode(context.Background(), AddressQuery("anywhere"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

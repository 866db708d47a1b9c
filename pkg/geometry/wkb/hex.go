package wkb

import (
	"encoding/hex"
	"fmt"

	"github.com/beetlebugorg/geokit/pkg/geometry"
)

// HexCodec wraps a binary codec with hexadecimal text, as returned by
// PostGIS for geometry columns.
type HexCodec struct {
	inner Transformer
}

// NewHex wraps t. Output is lowercase; input of either case is accepted.
func NewHex(t Transformer) *HexCodec {
	return &HexCodec{inner: t}
}

// NewWKBHex returns a hex codec over plain WKB.
func NewWKBHex() *HexCodec {
	return NewHex(New())
}

// NewEWKBHex returns a hex codec over EWKB.
func NewEWKBHex() *HexCodec {
	return NewHex(NewEWKB())
}

// Transform encodes g and returns the lowercase hex form.
func (h *HexCodec) Transform(g geometry.Geometry) (string, error) {
	data, err := h.inner.Transform(g)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// ReverseTransform decodes hex text and delegates to the wrapped codec.
func (h *HexCodec) ReverseTransform(text string) (geometry.Geometry, error) {
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}
	return h.inner.ReverseTransform(data)
}

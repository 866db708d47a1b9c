package wkb

import (
	"fmt"
)

// ErrUnsupportedByteOrder indicates a stream that is not little-endian (NDR)
type ErrUnsupportedByteOrder struct {
	ByteOrder byte
	Offset    int
}

func (e *ErrUnsupportedByteOrder) Error() string {
	return fmt.Sprintf("unsupported byte order 0x%02x at offset %d (only NDR is supported)",
		e.ByteOrder, e.Offset)
}

// ErrUnknownGeometryType indicates an unrecognized geometry type code
type ErrUnknownGeometryType struct {
	Code   uint32
	Offset int
}

func (e *ErrUnknownGeometryType) Error() string {
	return fmt.Sprintf("unknown geometry type %d at offset %d", e.Code, e.Offset)
}

// ErrTruncated indicates the input ended before a complete geometry was read
type ErrTruncated struct {
	Offset int
	Need   string
}

func (e *ErrTruncated) Error() string {
	return fmt.Sprintf("truncated input at offset %d: expected %s", e.Offset, e.Need)
}

// ErrTrailingBytes indicates bytes left over after the top-level geometry
type ErrTrailingBytes struct {
	Count int
}

func (e *ErrTrailingBytes) Error() string {
	return fmt.Sprintf("%d trailing bytes after geometry", e.Count)
}

package wkbio

import (
	"bytes"
	"testing"
)

// TestWriterReaderRoundTrip tests that values written can be read back in order
func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.Byte(1)
	w.Uint32(7)
	w.Float64(-71.05)

	r := NewReader(w.Bytes())
	if b, ok := r.Byte(); !ok || b != 1 {
		t.Errorf("Expected byte 1, got %d (ok=%v)", b, ok)
	}
	if v, ok := r.Uint32(); !ok || v != 7 {
		t.Errorf("Expected uint32 7, got %d (ok=%v)", v, ok)
	}
	if v, ok := r.Float64(); !ok || v != -71.05 {
		t.Errorf("Expected float64 -71.05, got %f (ok=%v)", v, ok)
	}
	if r.Remaining() != 0 || r.Offset() != 13 {
		t.Errorf("Expected cursor at 13 with 0 remaining, got %d/%d", r.Offset(), r.Remaining())
	}
}

// TestWriterLittleEndian tests byte layout
func TestWriterLittleEndian(t *testing.T) {
	w := NewWriter(12)
	w.Uint32(1)
	w.Float64(1.0)

	want := []byte{0x01, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0xF0, 0x3F}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Expected % x, got % x", want, w.Bytes())
	}
}

// TestReaderShortBuffer tests that reads past the end fail without advancing
func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})

	if _, ok := r.Uint32(); ok {
		t.Error("Expected Uint32 to fail on 3 bytes")
	}
	if r.Offset() != 0 {
		t.Errorf("Expected cursor unchanged, got %d", r.Offset())
	}
	if !r.Skip(2) {
		t.Error("Expected Skip(2) to succeed")
	}
	if _, ok := r.Float64(); ok {
		t.Error("Expected Float64 to fail on 1 byte")
	}
	if r.Skip(-1) {
		t.Error("Expected negative skip to fail")
	}
	if b, ok := r.Byte(); !ok || b != 3 {
		t.Errorf("Expected byte 3, got %d (ok=%v)", b, ok)
	}
	if _, ok := r.Byte(); ok {
		t.Error("Expected Byte to fail at end of buffer")
	}
}

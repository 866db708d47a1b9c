// Package wkbio provides the little-endian byte cursor and writer shared by
// the WKB codecs.
package wkbio

import (
	"encoding/binary"
	"math"
)

// Reader is a forward-only cursor over a byte slice.
//
// The cursor is an explicit offset; recursive decoders share one Reader and
// advance it as they consume nested geometries.
type Reader struct {
	data   []byte
	offset int
}

// NewReader creates a cursor positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.offset }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.offset }

// need reports whether n more bytes are available.
func (r *Reader) need(n int) bool {
	return n >= 0 && r.offset+n <= len(r.data)
}

// Byte reads one byte.
func (r *Reader) Byte() (byte, bool) {
	if !r.need(1) {
		return 0, false
	}
	b := r.data[r.offset]
	r.offset++
	return b, true
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() (uint32, bool) {
	if !r.need(4) {
		return 0, false
	}
	v := binary.LittleEndian.Uint32(r.data[r.offset : r.offset+4])
	r.offset += 4
	return v, true
}

// Float64 reads a little-endian IEEE-754 double.
func (r *Reader) Float64() (float64, bool) {
	if !r.need(8) {
		return 0, false
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(r.data[r.offset : r.offset+8]))
	r.offset += 8
	return v, true
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) bool {
	if !r.need(n) {
		return false
	}
	r.offset += n
	return true
}

// Writer appends little-endian values to a growing buffer.
type Writer struct {
	buf []byte
}

// NewWriter creates a writer with pre-allocated capacity.
func NewWriter(initialSize int) *Writer {
	return &Writer{buf: make([]byte, 0, initialSize)}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte { return w.buf }

// Byte appends one byte.
func (w *Writer) Byte(b byte) { w.buf = append(w.buf, b) }

// Uint32 appends a little-endian uint32.
func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Float64 appends a little-endian IEEE-754 double.
func (w *Writer) Float64(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

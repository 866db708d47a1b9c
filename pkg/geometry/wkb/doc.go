// Package wkb encodes and decodes geometries as Well-Known Binary.
//
// Output is always little-endian (NDR). Four codecs share one reader:
//
//   - New: plain OGC WKB
//   - NewEWKB: PostGIS extended WKB; Z, M and SRID flags are accepted on read
//     and extra ordinates are discarded
//   - NewMySQL: WKB preceded by a 4-byte SRID, as stored in MySQL geometry columns
//   - NewHex: wraps any codec with lowercase hexadecimal text
//
// Example:
//
//	codec := wkb.New()
//	data, err := codec.Transform(geometry.NewPoint(1, 1))
//	// data = 01 01000000 000000000000f03f 000000000000f03f
//
//	g, err := wkb.NewEWKBHex().ReverseTransform("0101000020e6100000000000000000f03f000000000000f03f")
package wkb

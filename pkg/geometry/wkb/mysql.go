package wkb

import (
	"github.com/beetlebugorg/geokit/pkg/geometry"
)

const mysqlSRIDSize = 4

// MySQLCodec reads and writes the MySQL internal geometry format: a 4-byte
// little-endian SRID followed by WKB.
type MySQLCodec struct {
	wkb *Codec
}

// NewMySQL creates a MySQL geometry codec. Written SRIDs are always zero.
func NewMySQL() *MySQLCodec {
	return &MySQLCodec{wkb: New()}
}

// Transform encodes g with a zero SRID prefix.
func (m *MySQLCodec) Transform(g geometry.Geometry) ([]byte, error) {
	body, err := m.wkb.Transform(g)
	if err != nil {
		return nil, err
	}
	out := make([]byte, mysqlSRIDSize, mysqlSRIDSize+len(body))
	return append(out, body...), nil
}

// ReverseTransform discards the SRID prefix and decodes the WKB body.
func (m *MySQLCodec) ReverseTransform(data []byte) (geometry.Geometry, error) {
	if len(data) < mysqlSRIDSize {
		return nil, &ErrTruncated{Offset: len(data), Need: "SRID"}
	}
	return m.wkb.ReverseTransform(data[mysqlSRIDSize:])
}

package timetable

import "fmt"

const (
	routeNameId = iota
	routeKind
)

var routeStructure = MustNewStructure(
	NewField(routeNameId, U16),
	NewField(routeKind, U8),
)

type BufferedRoutes struct {
	stringTable StringTable
	buf         *StructuredBuffer
}

func NewBufferedRoutes(stringTable StringTable, raw []byte) (*BufferedRoutes, error) {
	buf, err := NewStructuredBuffer(routeStructure, raw)
	if err != nil {
		return nil, err
	}
	return &BufferedRoutes{stringTable: stringTable, buf: buf}, nil
}

func (r *BufferedRoutes) Size() int {
	return r.buf.Size()
}

func (r *BufferedRoutes) Name(id int) string {
	return r.stringTable.Get(r.buf.GetU16(routeNameId, id))
}

// Vehicle panics on an unknown vehicle kind, the file is corrupt.
func (r *BufferedRoutes) Vehicle(id int) Vehicle {
	v, err := VehicleFromOrdinal(r.buf.GetU8(routeKind, id))
	if err != nil {
		panic(fmt.Sprintf("route %d: %v", id, err))
	}
	return v
}

package timetable

const (
	tripRouteId = iota
	tripDestinationId
)

var tripStructure = MustNewStructure(
	NewField(tripRouteId, U16),
	NewField(tripDestinationId, U16),
)

// BufferedTrips. trips active on one day.
type BufferedTrips struct {
	stringTable StringTable
	buf         *StructuredBuffer
}

func NewBufferedTrips(stringTable StringTable, raw []byte) (*BufferedTrips, error) {
	buf, err := NewStructuredBuffer(tripStructure, raw)
	if err != nil {
		return nil, err
	}
	return &BufferedTrips{stringTable: stringTable, buf: buf}, nil
}

func (t *BufferedTrips) Size() int {
	return t.buf.Size()
}

func (t *BufferedTrips) RouteId(id int) int {
	return t.buf.GetU16(tripRouteId, id)
}

func (t *BufferedTrips) Destination(id int) string {
	return t.stringTable.Get(t.buf.GetU16(tripDestinationId, id))
}

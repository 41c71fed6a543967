package timetable

import (
	"github.com/lintang-b-s/Transitx/pkg/datastructure"
	"github.com/lintang-b-s/Transitx/pkg/util"
)

const (
	connDepStopId = iota
	connDepMins
	connArrStopId
	connArrMins
	connTripPosId
)

var connectionStructure = MustNewStructure(
	NewField(connDepStopId, U16),
	NewField(connDepMins, U16),
	NewField(connArrStopId, U16),
	NewField(connArrMins, U16),
	NewField(connTripPosId, S32),
)

const succNextId = 0

var succStructure = MustNewStructure(NewField(succNextId, S32))

/*
BufferedConnections. connections of one day, sorted by decreasing departure time.
the successor buffer is co-indexed with the connections and holds, for every connection, the index of
the next connection of the same trip (the first one for the last connection of a trip).
*/
type BufferedConnections struct {
	buf  *StructuredBuffer
	succ *StructuredBuffer
}

func NewBufferedConnections(raw, rawSucc []byte) (*BufferedConnections, error) {
	buf, err := NewStructuredBuffer(connectionStructure, raw)
	if err != nil {
		return nil, err
	}
	succ, err := NewStructuredBuffer(succStructure, rawSucc)
	if err != nil {
		return nil, err
	}
	if buf.Size() != succ.Size() {
		return nil, util.NewErrorf(util.ErrBadParamInput, "%d connections but %d successors", buf.Size(), succ.Size())
	}
	return &BufferedConnections{buf: buf, succ: succ}, nil
}

func (c *BufferedConnections) Size() int {
	return c.buf.Size()
}

func (c *BufferedConnections) DepStopId(id int) int {
	return c.buf.GetU16(connDepStopId, id)
}

func (c *BufferedConnections) DepMins(id int) int {
	return c.buf.GetU16(connDepMins, id)
}

func (c *BufferedConnections) ArrStopId(id int) int {
	return c.buf.GetU16(connArrStopId, id)
}

func (c *BufferedConnections) ArrMins(id int) int {
	return c.buf.GetU16(connArrMins, id)
}

func (c *BufferedConnections) TripId(id int) int {
	return datastructure.Unpack24(uint32(c.buf.GetS32(connTripPosId, id)))
}

func (c *BufferedConnections) TripPos(id int) int {
	return datastructure.Unpack8(uint32(c.buf.GetS32(connTripPosId, id)))
}

func (c *BufferedConnections) NextConnectionId(id int) int {
	return int(c.succ.GetS32(succNextId, id))
}

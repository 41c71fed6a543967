package timetable

const (
	platformNameId = iota
	platformStationId
)

var platformStructure = MustNewStructure(
	NewField(platformNameId, U16),
	NewField(platformStationId, U16),
)

type BufferedPlatforms struct {
	stringTable StringTable
	buf         *StructuredBuffer
}

func NewBufferedPlatforms(stringTable StringTable, raw []byte) (*BufferedPlatforms, error) {
	buf, err := NewStructuredBuffer(platformStructure, raw)
	if err != nil {
		return nil, err
	}
	return &BufferedPlatforms{stringTable: stringTable, buf: buf}, nil
}

func (p *BufferedPlatforms) Size() int {
	return p.buf.Size()
}

func (p *BufferedPlatforms) Name(id int) string {
	return p.stringTable.Get(p.buf.GetU16(platformNameId, id))
}

func (p *BufferedPlatforms) StationId(id int) int {
	return p.buf.GetU16(platformStationId, id)
}

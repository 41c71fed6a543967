package timetable

import (
	"encoding/binary"
	"fmt"

	"github.com/lintang-b-s/Transitx/pkg/util"
)

// StructuredBuffer. fixed-width records laid out by a Structure over a (usually memory-mapped) byte slice.
type StructuredBuffer struct {
	structure *Structure
	buf       []byte
	size      int
}

func NewStructuredBuffer(structure *Structure, buf []byte) (*StructuredBuffer, error) {
	if len(buf)%structure.TotalSize() != 0 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "buffer of %d bytes is not a multiple of record size %d",
			len(buf), structure.TotalSize())
	}
	return &StructuredBuffer{
		structure: structure,
		buf:       buf,
		size:      len(buf) / structure.TotalSize(),
	}, nil
}

func (sb *StructuredBuffer) Size() int {
	return sb.size
}

func (sb *StructuredBuffer) offset(fieldIndex, elementIndex int, want FieldType) int {
	if elementIndex < 0 || elementIndex >= sb.size {
		panic(fmt.Sprintf("element index %d out of range [0, %d)", elementIndex, sb.size))
	}
	if ft := sb.structure.FieldType(fieldIndex); ft != want {
		panic(fmt.Sprintf("field %d is %v, read as %v", fieldIndex, ft, want))
	}
	return sb.structure.Offset(fieldIndex, elementIndex)
}

func (sb *StructuredBuffer) GetU8(fieldIndex, elementIndex int) int {
	return int(sb.buf[sb.offset(fieldIndex, elementIndex, U8)])
}

func (sb *StructuredBuffer) GetU16(fieldIndex, elementIndex int) int {
	off := sb.offset(fieldIndex, elementIndex, U16)
	return int(binary.BigEndian.Uint16(sb.buf[off : off+2]))
}

func (sb *StructuredBuffer) GetS32(fieldIndex, elementIndex int) int32 {
	off := sb.offset(fieldIndex, elementIndex, S32)
	return int32(binary.BigEndian.Uint32(sb.buf[off : off+4]))
}

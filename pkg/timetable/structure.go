package timetable

import (
	"fmt"

	"github.com/lintang-b-s/Transitx/pkg/util"
)

type FieldType uint8

const (
	U8 FieldType = iota
	U16
	S32
)

func (ft FieldType) width() int {
	switch ft {
	case U8:
		return 1
	case U16:
		return 2
	case S32:
		return 4
	default:
		return 0
	}
}

func (ft FieldType) String() string {
	switch ft {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case S32:
		return "S32"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(ft))
	}
}

type Field struct {
	Index int
	Type  FieldType
}

func NewField(index int, fieldType FieldType) Field {
	return Field{Index: index, Type: fieldType}
}

// Structure. layout of one fixed-width big-endian record.
type Structure struct {
	fieldTypes   []FieldType
	fieldBytePos []int
	totalSize    int
}

// NewStructure builds the layout; fields must be given in index order 0..n-1.
func NewStructure(fields ...Field) (*Structure, error) {
	s := &Structure{
		fieldTypes:   make([]FieldType, len(fields)),
		fieldBytePos: make([]int, len(fields)),
	}
	for i, f := range fields {
		if f.Index != i {
			return nil, util.NewErrorf(util.ErrBadParamInput, "field %d has index %d, fields must be ordered 0..%d", i, f.Index, len(fields)-1)
		}
		w := f.Type.width()
		if w == 0 {
			return nil, util.NewErrorf(util.ErrBadParamInput, "field %d has unknown type %v", i, f.Type)
		}
		s.fieldTypes[i] = f.Type
		s.fieldBytePos[i] = s.totalSize
		s.totalSize += w
	}
	if s.totalSize == 0 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "structure has no fields")
	}
	return s, nil
}

func MustNewStructure(fields ...Field) *Structure {
	s, err := NewStructure(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Structure) TotalSize() int {
	return s.totalSize
}

func (s *Structure) NumFields() int {
	return len(s.fieldTypes)
}

func (s *Structure) FieldType(fieldIndex int) FieldType {
	return s.fieldTypes[fieldIndex]
}

// Offset returns the byte offset of field fieldIndex in record elementIndex.
func (s *Structure) Offset(fieldIndex, elementIndex int) int {
	if elementIndex < 0 {
		panic(fmt.Sprintf("negative element index %d", elementIndex))
	}
	if fieldIndex < 0 || fieldIndex >= len(s.fieldBytePos) {
		panic(fmt.Sprintf("field index %d out of range [0, %d)", fieldIndex, len(s.fieldBytePos)))
	}
	return elementIndex*s.totalSize + s.fieldBytePos[fieldIndex]
}

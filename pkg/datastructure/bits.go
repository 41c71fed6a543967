package datastructure

import (
	"github.com/lintang-b-s/Transitx/pkg/util"
)

const (
	bits24Mask = 1<<24 - 1
	bits8Mask  = 1<<8 - 1
)

// Pack24_8 packs bits24 into the high 24 bits and bits8 into the low 8 bits of a 32-bit word.
func Pack24_8(bits24, bits8 int) (uint32, error) {
	if bits24 < 0 || bits24 > bits24Mask {
		return 0, util.NewErrorf(util.ErrBadParamInput, "value %d does not fit in 24 bits", bits24)
	}
	if bits8 < 0 || bits8 > bits8Mask {
		return 0, util.NewErrorf(util.ErrBadParamInput, "value %d does not fit in 8 bits", bits8)
	}
	return uint32(bits24)<<8 | uint32(bits8), nil
}

func Unpack24(bits32 uint32) int {
	return int(bits32 >> 8)
}

func Unpack8(bits32 uint32) int {
	return int(bits32 & bits8Mask)
}

// PackedRange is a half-open interval [start, end) with a 24-bit start and an 8-bit length.
type PackedRange uint32

func NewPackedRange(startInclusive, endExclusive int) (PackedRange, error) {
	if endExclusive < startInclusive {
		return 0, util.NewErrorf(util.ErrBadParamInput, "invalid range [%d, %d)", startInclusive, endExclusive)
	}
	v, err := Pack24_8(startInclusive, endExclusive-startInclusive)
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrBadParamInput, "range [%d, %d) cannot be packed", startInclusive, endExclusive)
	}
	return PackedRange(v), nil
}

func (r PackedRange) Length() int {
	return Unpack8(uint32(r))
}

func (r PackedRange) StartInclusive() int {
	return Unpack24(uint32(r))
}

func (r PackedRange) EndExclusive() int {
	return r.StartInclusive() + r.Length()
}

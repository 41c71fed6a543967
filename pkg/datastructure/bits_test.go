package datastructure

import (
	"testing"

	"github.com/lintang-b-s/Transitx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack24_8(t *testing.T) {
	testCases := []struct {
		name    string
		bits24  int
		bits8   int
		wantErr bool
	}{
		{name: "zero", bits24: 0, bits8: 0},
		{name: "max", bits24: 1<<24 - 1, bits8: 255},
		{name: "trip and position", bits24: 200, bits8: 3},
		{name: "24 bit overflow", bits24: 1 << 24, bits8: 0, wantErr: true},
		{name: "8 bit overflow", bits24: 0, bits8: 256, wantErr: true},
		{name: "negative", bits24: -1, bits8: 0, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Pack24_8(tt.bits24, tt.bits8)
			if tt.wantErr {
				assert.ErrorIs(t, err, util.ErrBadParamInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bits24, Unpack24(v))
			assert.Equal(t, tt.bits8, Unpack8(v))
		})
	}
}

func TestPackedRange(t *testing.T) {
	r, err := NewPackedRange(1000, 1010)
	require.NoError(t, err)
	assert.Equal(t, 1000, r.StartInclusive())
	assert.Equal(t, 1010, r.EndExclusive())
	assert.Equal(t, 10, r.Length())

	empty, err := NewPackedRange(5, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Length())

	_, err = NewPackedRange(10, 5)
	assert.Error(t, err)
	_, err = NewPackedRange(0, 256)
	assert.Error(t, err)
	_, err = NewPackedRange(1<<24, 1<<24+1)
	assert.Error(t, err)
}

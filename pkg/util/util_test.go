package util

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(fs.ErrNotExist, ErrNotFound, "open %s", "stations.bin")
	assert.EqualError(t, err, "open stations.bin: file does not exist")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrBadParamInput)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ErrNotFound, e.Code())

	plain := NewErrorf(ErrBadParamInput, "bad %d", 3)
	assert.EqualError(t, plain, "bad 3")
	assert.ErrorIs(t, plain, ErrBadParamInput)
}

func TestFormatMinutes(t *testing.T) {
	testCases := []struct {
		mins int
		want string
	}{
		{mins: 0, want: "00:00"},
		{mins: 485, want: "08:05"},
		{mins: 1500, want: "25:00"},
		{mins: -30, want: "-00:30"},
	}

	for _, tt := range testCases {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.mins))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "./data/timetable", cfg.TimetableDir)
	assert.Equal(t, 6060, cfg.APIPort)
	assert.Equal(t, 64, cfg.ProfileCacheSize)

	viper.Set("PROFILE_CACHE_SIZE", 0)
	_, err = LoadConfig()
	assert.ErrorIs(t, err, ErrBadParamInput)

	viper.Set("PROFILE_CACHE_SIZE", 8)
	viper.Set("TIMEZONE", "Mars/Olympus")
	_, err = LoadConfig()
	assert.ErrorIs(t, err, ErrBadParamInput)
}

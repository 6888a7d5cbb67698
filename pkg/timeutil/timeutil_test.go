package timeutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:05", 545},
		{"9:05", 545},
		{"13:17", 797},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got, err := ToMinutes(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestToMinutes_Malformed(t *testing.T) {
	for _, in := range []string{"", "0900", "24:00", "12:60", "ab:cd", "12:5", "+1:30", "123:00", "12:30:00"} {
		_, err := ToMinutes(in)
		require.Error(t, err, in)

		var fe *FormatError
		assert.True(t, errors.As(err, &fe), in)
	}
}

func TestToText(t *testing.T) {
	assert.Equal(t, "00:00", ToText(0))
	assert.Equal(t, "09:05", ToText(545))
	assert.Equal(t, "23:59", ToText(1439))
	assert.Equal(t, "00:00", ToText(1440))
	assert.Equal(t, "01:30", ToText(1440+90))
}

func TestRoundTripOnGrid(t *testing.T) {
	for m := 0; m <= 23*60+45; m += GridStepMinutes {
		text := ToText(m)
		back, err := ToMinutes(text)
		require.NoError(t, err)
		assert.Equal(t, text, ToText(back))
	}
}

func TestNextGridBoundary(t *testing.T) {
	assert.Equal(t, 660, NextGridBoundary(647)) // 10:47 -> 11:00
	assert.Equal(t, 660, NextGridBoundary(650)) // 10:50 -> 11:00
	assert.Equal(t, 645, NextGridBoundary(632)) // 10:32 -> 10:45
	assert.Equal(t, 645, NextGridBoundary(645))
	assert.Equal(t, 0, NextGridBoundary(0))
	assert.Equal(t, 15, NextGridBoundary(1))
}

func TestIsShortGap(t *testing.T) {
	assert.False(t, IsShortGap(600, 610))
	assert.False(t, IsShortGap(600, 614))
	assert.True(t, IsShortGap(600, 615))
	assert.True(t, IsShortGap(600, 629))
	assert.False(t, IsShortGap(600, 630))
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"09:00":                     "09:00",
		"9:00":                      "09:00",
		"09:00:00":                  "09:00",
		" 13:17:42 ":                "13:17",
		"2025-03-10T13:17:00":       "13:17",
		"2025-03-10T13:17:00.000Z":  "13:17",
		"2025-03-10T13:17:00-03:00": "13:17",
		"2025-03-10T13:17:00+02:00": "13:17",
		"2025-03-10 08:45:00":       "08:45",
	}

	for in, want := range cases {
		got, err := Normalize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalize_Malformed(t *testing.T) {
	for _, in := range []string{"", "   ", "2025-03-10", "noon", "25:00:00", "10:00:99", "2025-03-10Tnoon"} {
		_, err := Normalize(in)
		require.Error(t, err, in)

		var fe *FormatError
		assert.True(t, errors.As(err, &fe), in)
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("2025-03-10T10:47:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, 647, m)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minutes int
	}{
		{"midnight", "12:00 AM", 0},
		{"noon", "12:00 PM", 720},
		{"afternoon", "1:30 PM", 810},
		{"morning single digit", "9:00 AM", 540},
		{"zero padded", "08:00 PM", 1200},
		{"lower case", "10:15 am", 615},
		{"no space", "11:59PM", 1439},
		{"surrounding spaces", "  7:05 pm ", 1145},
		{"half past midnight", "12:30 AM", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDisplayTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes())
		})
	}
}

func TestParseDisplayTime_Invalid(t *testing.T) {
	inputs := []string{"", "noon", "13:00 PM", "0:30 AM", "9:60 AM", "9:00", "21:00", "9.00 AM", "9:0 AM"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDisplayTime(input)
			assert.ErrorIs(t, err, ErrInvalidDisplayTime)
		})
	}
}

func TestMinutesOrZero(t *testing.T) {
	assert.Equal(t, 0, MinutesOrZero("garbage"))
	assert.Equal(t, 810, MinutesOrZero("1:30 PM"))
}

func TestDisplayTime_String(t *testing.T) {
	assert.Equal(t, "12:00 AM", DisplayTime(0).String())
	assert.Equal(t, "12:00 PM", DisplayTime(720).String())
	assert.Equal(t, "08:00 PM", DisplayTime(1200).String())
	assert.Equal(t, "09:05 AM", DisplayTime(545).String())
	assert.Equal(t, "11:59 PM", DisplayTime(1439).String())
}

func TestDisplayTime_RoundTrip(t *testing.T) {
	for minutes := 0; minutes < minutesInDay; minutes += 15 {
		dt := DisplayTime(minutes)
		parsed, err := ParseDisplayTime(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, parsed, "round trip for %s", dt)
	}
}

func TestDisplayTime_AddMinutes(t *testing.T) {
	start := MustParseDisplayTime("11:30 PM")

	next, err := start.AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, "11:59 PM", next.String())

	_, err = start.AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestDisplayTime_Compare(t *testing.T) {
	open := MustParseDisplayTime("10:00 AM")
	closeTime := MustParseDisplayTime("8:00 PM")

	assert.True(t, open.IsBefore(closeTime))
	assert.True(t, closeTime.IsAfter(open))
	assert.False(t, open.IsBefore(open))
}

func TestDisplayTime_Text(t *testing.T) {
	var dt DisplayTime
	require.NoError(t, dt.UnmarshalText([]byte("1:30 pm")))
	assert.Equal(t, 810, dt.Minutes())

	text, err := dt.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "01:30 PM", string(text))

	assert.Error(t, dt.UnmarshalText([]byte("later")))
}

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1200", "12:00pm"},
		{"1300", "1:00pm"},
		{"2400", "12:00am"},
		{"0915", "9:15am"},
		{"0000", "0:00am"},
		{"1159", "11:59am"},
		{"2359", "11:59pm"},
		{"1230", "12:30pm"},
		{"0005", "0:05am"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.in), tt.in)
	}
}

func TestFormatTime_Malformed(t *testing.T) {
	for _, in := range []string{"", "915", "09:15", "ab15"} {
		assert.Equal(t, in, FormatTime(in))
	}
}

func TestParseTime(t *testing.T) {
	c, err := ParseTime("0915")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 9, Minute: 15}, c)

	c, err = ParseTime("2400")
	require.NoError(t, err)
	assert.Equal(t, 24, c.Hour)

	for _, in := range []string{"", "915", "9:15", "12345", "1a00"} {
		_, err := ParseTime(in)
		var invalid *InvalidTimeError
		require.ErrorAs(t, err, &invalid, in)
		assert.Equal(t, in, invalid.Value)
	}
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{input: "09:00", want: "09:00"},
		{input: "18:30:00", want: "18:30"},
		{input: " 10:00 ", want: "10:00"},
		{input: "24:00", wantErr: true},
		{input: "10:60", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), got)

	got, err = TimeString("10:00").AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), got)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00:00").IsAfter("09:30"))
	assert.False(t, TimeString("10:00").IsBefore("10:00:00"))
	assert.Equal(t, "14:00", TimeString("14:30").Hour())
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("ART", -3*3600)
	at, err := TimeString("10:30").On(Date{Year: 2025, Month: time.March, Day: 10}, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 30, 0, 0, loc), at)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("09:30:00")))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	value, err := TimeString("15:00:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "15:00", value)
}

func TestTimeString_Normalize(t *testing.T) {
	tests := []struct {
		input TimeString
		want  TimeString
	}{
		{input: "09:00", want: "09:00"},
		{input: "09:00:00", want: "09:00"},
		{input: "18:30:59", want: "18:30"},
		{input: "09:00:00.000", want: "09:00"},
		{input: "14:30:00.123456", want: "14:30"},
		{input: "10:00:00+03", want: "10:00"},
		{input: "", want: ""},
		{input: "9:00", want: "9:00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			once := tt.input.Normalize()
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, once.Normalize())
		})
	}
}

func TestTimeString_ScanFractionalSeconds(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:00:00.000"))
	assert.Equal(t, TimeString("09:00"), ts)

	got, err := NewTimeStringFromString("11:30:00.5")
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "09:30", want: "09:30"},
		{name: "postgres time", input: "17:00:00", want: "17:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "past end of day", input: "24:30", wantErr: true},
		{name: "single digit hour", input: "9:30", wantErr: true},
		{name: "bad minutes", input: "10:75", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
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
	start := TimeString("09:00")

	end, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), end)

	midnight, err := TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), midnight)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("09:30")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.True(t, a.Equal("09:00"))
	assert.Equal(t, 540, a.Minutes())
	assert.Equal(t, -1, TimeString("bad").Minutes())
}

func TestTimeString_ScanAndValue(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:15:00")))
	assert.Equal(t, TimeString("10:15"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:05"), ts)

	assert.Error(t, ts.Scan(42))

	v, err := TimeString("10:15").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:15:00", v)
}

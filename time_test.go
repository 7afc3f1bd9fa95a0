package msig

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTime(t *testing.T) {
	now := time.Now()
	ut := AsUnixTime(now)

	assert.Equal(t, now.Unix(), int64(ut))
	assert.Equal(t, now.Unix(), ut.Time().Unix())
	assert.False(t, ut.IsZero())
	assert.True(t, UnixTime(0).IsZero())

	assert.Equal(t, ut+90, ut.Add(90*time.Second))
	// sub-second precision is dropped
	assert.Equal(t, ut, ut.Add(900*time.Millisecond))
}

func TestUnixTimeJSON(t *testing.T) {
	var ut UnixTime
	require.NoError(t, ut.UnmarshalJSON([]byte(`1234567`)))
	assert.Equal(t, UnixTime(1234567), ut)

	require.NoError(t, ut.UnmarshalJSON([]byte(`"2019-04-01T10:00:00Z"`)))
	assert.Equal(t, AsUnixTime(time.Date(2019, 4, 1, 10, 0, 0, 0, time.UTC)), ut)

	assert.Error(t, ut.UnmarshalJSON([]byte(`-5`)))
	assert.Error(t, ut.UnmarshalJSON([]byte(`"garbage"`)))
}

func TestUnixDurationJSON(t *testing.T) {
	var d UnixDuration
	require.NoError(t, d.UnmarshalJSON([]byte(`600`)))
	assert.Equal(t, UnixDuration(600), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`"2h30m"`)))
	assert.Equal(t, AsUnixDuration(150*time.Minute), d)

	assert.Error(t, d.UnmarshalJSON([]byte(`"garbage"`)))
}

func TestIsExpired(t *testing.T) {
	now := time.Unix(5000, 0)
	ctx := WithBlockTime(context.Background(), now)

	assert.True(t, IsExpired(ctx, UnixTime(4000)))
	// expiration is inclusive
	assert.True(t, IsExpired(ctx, UnixTime(5000)))
	assert.False(t, IsExpired(ctx, UnixTime(5001)))
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	assert.Panics(t, func() {
		IsExpired(context.Background(), UnixTime(5000))
	})
}

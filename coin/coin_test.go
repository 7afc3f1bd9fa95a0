package coin

import (
	"testing"

	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCoin(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"simple coin": {
			coin: NewCoin(100, 5, "ATOM"),
		},
		"negative coin": {
			coin: NewCoin(-10, -500, "IOV"),
		},
		"invalid ticker": {
			coin:    NewCoin(1, 0, "at"),
			wantErr: errors.ErrAmount,
		},
		"whole overflow": {
			coin:    NewCoin(MaxInt+1, 0, "IOV"),
			wantErr: errors.ErrOverflow,
		},
		"fraction out of range": {
			coin:    NewCoin(1, FracUnit, "IOV"),
			wantErr: errors.ErrOverflow,
		},
		"mismatched sign": {
			coin:    NewCoin(5, -5, "IOV"),
			wantErr: errors.ErrState,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
			}
		})
	}
}

func TestAddCoin(t *testing.T) {
	base := NewCoin(17, 2345566, "DEF")
	cases := map[string]struct {
		a, b    Coin
		wantRes Coin
		wantErr bool
	}{
		"plain addition": {
			a:       base,
			b:       base,
			wantRes: NewCoin(34, 4691132, "DEF"),
		},
		"wrong currencies": {
			a:       NewCoin(1, 2, "FOO"),
			b:       NewCoin(2, 3, "BAR"),
			wantErr: true,
		},
		"zero coin adopts ticker": {
			a:       NewCoin(0, 0, ""),
			b:       NewCoin(5, 0, "ATM"),
			wantRes: NewCoin(5, 0, "ATM"),
		},
		"fractional carry": {
			a:       NewCoin(1, FracUnit-2, "ABC"),
			b:       NewCoin(0, 5, "ABC"),
			wantRes: NewCoin(2, 3, "ABC"),
		},
		"overflow": {
			a:       NewCoin(MaxInt, 0, "ABC"),
			b:       NewCoin(1, 0, "ABC"),
			wantErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := tc.a.Add(tc.b)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCompare(t *testing.T) {
	a := NewCoin(3, 0, "IOV")
	b := NewCoin(3, 1, "IOV")
	c := NewCoin(4, 0, "IOV")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, c.IsGTE(a))
	assert.False(t, a.IsGTE(b))

	assert.Panics(t, func() { a.Compare(NewCoin(1, 0, "ETH")) })
}

func TestSubtract(t *testing.T) {
	got, err := NewCoin(10, 0, "IOV").Subtract(NewCoin(3, 5, "IOV"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(6, FracUnit-5, "IOV"), got)
	assert.True(t, got.IsPositive())

	got, err = NewCoin(1, 0, "IOV").Subtract(NewCoin(2, 0, "IOV"))
	require.NoError(t, err)
	assert.False(t, got.IsNonNegative())
}

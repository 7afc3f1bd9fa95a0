// Package coin provides a fixed-point currency value with a ticker,
// used to express spending amounts and limits.
package coin

import (
	"fmt"
	"regexp"

	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// Coin is a fixed-point representation of an amount of some currency.
// Whole and Fractional carry the same sign, and Fractional is bounded
// by FracUnit.
type Coin struct {
	Whole      int64  `json:"whole"`
	Fractional int64  `json:"fractional"`
	Ticker     string `json:"ticker"`
}

const (
	// MaxInt is the largest whole value we accept
	MaxInt int64 = 999999999999999 // 10^15-1
	// MinInt is the lowest whole value we accept
	MinInt = -MaxInt

	// FracUnit is the smallest numbers we divide by
	FracUnit int64 = 1000000000 // fractional units = 10^9
	// MaxFrac is the highest possible fractional value
	MaxFrac = FracUnit - 1
	// MinFrac is the lowest possible fractional value
	MinFrac = -MaxFrac
)

// IsCC checks if the ticker is a valid currency code
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// NewCoin creates a new coin object
func NewCoin(whole int64, fractional int64, ticker string) Coin {
	return Coin{
		Whole:      whole,
		Fractional: fractional,
		Ticker:     ticker,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

// Add combines two coins of the same currency.
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins is zero, use the other coin ticker.
	if c.Ticker != o.Ticker {
		if c.IsZero() {
			c.Ticker = o.Ticker
		} else if o.IsZero() {
			o.Ticker = c.Ticker
		}
	}

	if !c.SameType(o) {
		err := errors.Wrapf(errors.ErrAmount, "adding %s to %s", c.Ticker, o.Ticker)
		return Coin{}, err
	}

	c.Whole += o.Whole
	c.Fractional += o.Fractional
	return c.normalize()
}

// Negative returns the opposite coin value.
func (c Coin) Negative() Coin {
	return Coin{
		Ticker:     c.Ticker,
		Whole:      -1 * c.Whole,
		Fractional: -1 * c.Fractional,
	}
}

// Subtract given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Compare returns 1 if c is larger, -1 if c is smaller, and 0 if they
// are the same. It panics on different currencies, use SameType first.
func (c Coin) Compare(o Coin) int {
	if c.Ticker != o.Ticker {
		panic(fmt.Sprintf("comparing %s to %s", c.Ticker, o.Ticker))
	}
	if c.Whole > o.Whole {
		return 1
	}
	if c.Whole < o.Whole {
		return -1
	}
	// same whole, compare fractional
	if c.Fractional > o.Fractional {
		return 1
	}
	if c.Fractional < o.Fractional {
		return -1
	}
	return 0
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker &&
		c.Whole == o.Whole &&
		c.Fractional == o.Fractional
}

// IsZero returns true amounts are 0
func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.Whole > 0 ||
		(c.Whole == 0 && c.Fractional > 0)
}

// IsNonNegative returns true if the value is 0 or higher
func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsGTE returns true if c is same type and at least as large as o
func (c Coin) IsGTE(o Coin) bool {
	if !c.SameType(o) || c.Whole < o.Whole {
		return false
	}
	if (c.Whole == o.Whole) &&
		(c.Fractional < o.Fractional) {
		return false
	}
	return true
}

// SameType returns true if they have the same currency
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{
		Ticker:     c.Ticker,
		Whole:      c.Whole,
		Fractional: c.Fractional,
	}
}

// Validate ensures that the coin is in the valid range and a valid
// currency code.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrAmount, "invalid currency: %s", c.Ticker)
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		return errors.Wrap(errors.ErrOverflow, "whole")
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		return errors.Wrap(errors.ErrOverflow, "fractional")
	}
	// make sure signs match
	if c.Whole != 0 && c.Fractional != 0 &&
		((c.Whole > 0) != (c.Fractional > 0)) {
		return errors.Wrap(errors.ErrState, "mismatched sign")
	}
	return nil
}

// normalize adjusts the fractional part to be within limits, moving
// overflow into the whole part, and ensures both have the same sign.
func (c Coin) normalize() (Coin, error) {
	// keep fraction in range
	for c.Fractional < MinFrac {
		c.Whole--
		c.Fractional += FracUnit
	}
	for c.Fractional > MaxFrac {
		c.Whole++
		c.Fractional -= FracUnit
	}

	// make sure the signs correspond
	if (c.Whole > 0) && (c.Fractional < 0) {
		c.Whole--
		c.Fractional += FracUnit
	} else if (c.Whole < 0) && (c.Fractional > 0) {
		c.Whole++
		c.Fractional -= FracUnit
	}

	// return error if we overflow
	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.Wrap(errors.ErrOverflow, "normalize")
	}
	return c, nil
}

func (c Coin) String() string {
	return fmt.Sprintf("%d.%09d %s", c.Whole, abs(c.Fractional), c.Ticker)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

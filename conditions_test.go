package msig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParse(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte{1, 2, 3, 4})

	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
	assert.NoError(t, cond.Validate())

	// data containing a newline must still parse
	cond = NewCondition("dao", "wallet", []byte{0x20, 0x0a, 0x20})
	_, _, data, err = cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x0a, 0x20}, data)

	garbage := Condition("foobar")
	_, _, _, err = garbage.Parse()
	assert.Error(t, err)
	assert.Error(t, garbage.Validate())
}

func TestConditionAddress(t *testing.T) {
	a := NewCondition("sigs", "ed25519", []byte("first")).Address()
	b := NewCondition("sigs", "ed25519", []byte("second")).Address()

	assert.NoError(t, a.Validate())
	assert.Equal(t, AddressLength, len(a))
	assert.False(t, a.Equals(b))

	// address is deterministic
	assert.True(t, a.Equals(NewCondition("sigs", "ed25519", []byte("first")).Address()))
}

func TestAddressJSON(t *testing.T) {
	addr := NewCondition("dao", "wallet", []byte{1}).Address()

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var loaded Address
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.True(t, addr.Equals(loaded))

	// the cond: prefix derives the address from a condition
	var fromCond Address
	require.NoError(t, json.Unmarshal([]byte(`"cond:dao/wallet/01"`), &fromCond))
	assert.True(t, addr.Equals(fromCond))

	var empty Address
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Nil(t, empty)
}

func TestParseAddress(t *testing.T) {
	addr := NewAddress([]byte("some data"))

	got, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.True(t, addr.Equals(got))

	_, err = ParseAddress("not-hex")
	assert.Error(t, err)
}

func TestAddressValidate(t *testing.T) {
	assert.Error(t, Address([]byte("too short")).Validate())
	assert.NoError(t, NewAddress([]byte("x")).Validate())
}

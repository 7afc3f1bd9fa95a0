package x

import (
	"context"
	"testing"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest/assert"
)

func TestAuth(t *testing.T) {
	a := msigtest.NewCondition()
	b := msigtest.NewCondition()
	c := msigtest.NewCondition()

	cases := map[string]struct {
		auth       Authenticator
		mainSigner msig.Condition
		has        []msig.Address
		notHas     []msig.Address
		all        bool
	}{
		"empty auth": {
			auth:   &msigtest.Auth{},
			notHas: []msig.Address{a.Address()},
			all:    true, // no required addresses
		},
		"single signer": {
			auth:       &msigtest.Auth{Signer: a},
			mainSigner: a,
			has:        []msig.Address{a.Address()},
			notHas:     []msig.Address{b.Address()},
		},
		"chained auth": {
			auth: ChainAuth(
				&msigtest.Auth{Signer: b},
				&msigtest.Auth{Signers: []msig.Condition{a, c}},
			),
			mainSigner: b,
			has:        []msig.Address{a.Address(), b.Address(), c.Address()},
			all:        true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if tc.mainSigner == nil {
				assert.Nil(t, MainSigner(ctx, tc.auth))
			} else {
				assert.Equal(t, tc.mainSigner, MainSigner(ctx, tc.auth))
			}
			for _, addr := range tc.has {
				if !tc.auth.HasAddress(ctx, addr) {
					t.Errorf("missing address: %s", addr)
				}
			}
			for _, addr := range tc.notHas {
				if tc.auth.HasAddress(ctx, addr) {
					t.Errorf("unexpected address: %s", addr)
				}
			}

			required := []msig.Address{a.Address(), b.Address(), c.Address()}
			assert.Equal(t, tc.all, HasAllAddresses(ctx, tc.auth, required))
		})
	}
}

func TestHasNAddresses(t *testing.T) {
	a := msigtest.NewCondition()
	b := msigtest.NewCondition()
	c := msigtest.NewCondition()

	ctx := context.Background()
	auth := &msigtest.Auth{Signers: []msig.Condition{a, b}}
	requested := []msig.Address{a.Address(), b.Address(), c.Address()}

	assert.Equal(t, true, HasNAddresses(ctx, auth, requested, 0))
	assert.Equal(t, true, HasNAddresses(ctx, auth, requested, 2))
	assert.Equal(t, false, HasNAddresses(ctx, auth, requested, 3))
}

func TestCtxAuth(t *testing.T) {
	a := msigtest.NewCondition()

	auth := msigtest.CtxAuth{Key: "auth"}
	ctx := auth.SetConditions(context.Background(), a)

	assert.Equal(t, []msig.Condition{a}, auth.GetConditions(ctx))
	assert.Equal(t, true, auth.HasAddress(ctx, a.Address()))
	assert.Equal(t, false, auth.HasAddress(context.Background(), a.Address()))

	addrs := GetAddresses(ctx, auth)
	assert.Equal(t, []msig.Address{a.Address()}, addrs)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/fixtures"
	"github.com/kwami-ai/kwamid/ledger"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/storage"
	"github.com/kwami-ai/kwamid/token"
	"github.com/kwami-ai/kwamid/token/mocks"
)

var (
	authorityId = account.Identity{0xa1}
	holderId    = account.Identity{0xb1}
	otherId     = account.Identity{0xc1}
	tokenMint   = account.Identity{0xd1}
)

func newContext(t *testing.T, signers ...account.Identity) *program.Context {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return program.NewContext(trx, time.Now(), signers)
}

func run(t *testing.T, handler func(ctx *program.Context) error, signers ...account.Identity) error {
	ctx := newContext(t, signers...)
	err := handler(ctx)
	if nil != err {
		ctx.Transaction().Abort()
		return err
	}
	if err := ctx.Transaction().Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

func setup(t *testing.T, maximumSupply uint64) *ledger.Program {
	p := ledger.New(fixtures.LedgerProgram, &ledger.Configuration{MaximumSupply: maximumSupply}, token.New())
	_, bump, err := p.AuthorityAddress(tokenMint)
	if nil != err {
		t.Fatalf("authority address error: %s", err)
	}
	err = run(t, func(ctx *program.Context) error {
		return p.Initialise(ctx, &ledger.InitialiseArguments{Authority: authorityId, Mint: tokenMint, Bump: bump})
	}, authorityId)
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	return p
}

func mintTokens(t *testing.T, p *ledger.Program, caller account.Identity, amount uint64) error {
	return run(t, func(ctx *program.Context) error {
		return p.MintTokens(ctx, &ledger.MintArguments{Authority: caller, Mint: tokenMint, Destination: holderId, Amount: amount})
	}, caller)
}

func burnTokens(t *testing.T, p *ledger.Program, amount uint64) error {
	return run(t, func(ctx *program.Context) error {
		return p.BurnTokens(ctx, &ledger.BurnArguments{Owner: holderId, Mint: tokenMint, Amount: amount})
	}, holderId)
}

func info(t *testing.T, p *ledger.Program) *ledger.Info {
	ctx := newContext(t)
	defer ctx.Transaction().Abort()
	i, err := p.Ledger(ctx, tokenMint)
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}
	return i
}

func TestInitialise(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := setup(t, 0)
	i := info(t, p)
	assert.Equal(t, authorityId, i.Authority, "authority")
	assert.Equal(t, ledger.DefaultMaximumSupply, i.MaximumSupply, "default maximum")
	assert.Equal(t, uint64(record.DefaultBasePrice), i.BasePriceUsdCents, "base price")
	assert.Equal(t, uint8(record.TokenDecimals), i.Decimals, "decimals")
	assert.Equal(t, uint64(0), i.Circulating, "circulating")

	_, bump, _ := p.AuthorityAddress(tokenMint)
	err := run(t, func(ctx *program.Context) error {
		return p.Initialise(ctx, &ledger.InitialiseArguments{Authority: authorityId, Mint: tokenMint, Bump: bump})
	}, authorityId)
	assert.Equal(t, fault.AlreadyInitialized, err, "second initialise")
}

// maximum 1000: 600 then 500 fails, burn 100, 500 fits exactly
func TestSupplyCeiling(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := setup(t, 1000)

	assert.Nil(t, mintTokens(t, p, authorityId, 600), "mint 600")
	assert.Equal(t, fault.MaxSupplyExceeded, mintTokens(t, p, authorityId, 500), "mint 500 over ceiling")
	assert.Equal(t, uint64(600), info(t, p).TotalMinted, "counters unchanged")

	assert.Nil(t, burnTokens(t, p, 100), "burn 100")
	assert.Equal(t, uint64(500), info(t, p).Circulating, "circulating 500")

	assert.Nil(t, mintTokens(t, p, authorityId, 500), "mint 500 fits")
	i := info(t, p)
	assert.Equal(t, uint64(1000), i.Circulating, "circulating at ceiling")
	assert.Equal(t, uint64(1100), i.TotalMinted, "total minted")
	assert.Equal(t, uint64(100), i.TotalBurned, "total burned")

	ctx := newContext(t)
	defer ctx.Transaction().Abort()
	balance, err := p.Balance(ctx, tokenMint, holderId)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(1000), balance, "holder balance")
}

func TestMintOverflow(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := setup(t, math.MaxUint64)
	assert.Nil(t, mintTokens(t, p, authorityId, 10), "mint")
	assert.Equal(t, fault.MathOverflow, mintTokens(t, p, authorityId, math.MaxUint64), "overflow")
	assert.Equal(t, uint64(10), info(t, p).TotalMinted, "unchanged")
}

func TestMintAuthority(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := setup(t, 0)
	assert.Equal(t, fault.Unauthorized, mintTokens(t, p, otherId, 1), "not the authority")

	err := run(t, func(ctx *program.Context) error {
		return p.MintTokens(ctx, &ledger.MintArguments{Authority: authorityId, Mint: tokenMint, Destination: holderId, Amount: 1})
	})
	assert.Equal(t, fault.MissingSignature, err, "unsigned")
}

func TestBurnInsufficient(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := setup(t, 0)
	assert.Nil(t, mintTokens(t, p, authorityId, 50), "mint")
	assert.Equal(t, fault.InsufficientFunds, burnTokens(t, p, 51), "too much")
	assert.Equal(t, uint64(0), info(t, p).TotalBurned, "unchanged")
}

func TestUpdateBasePrice(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := setup(t, 0)
	update := func(caller account.Identity, price uint64) error {
		return run(t, func(ctx *program.Context) error {
			return p.UpdateBasePrice(ctx, &ledger.PriceArguments{Authority: caller, Mint: tokenMint, Price: price})
		}, caller)
	}

	assert.Equal(t, fault.InvalidPrice, update(authorityId, 0), "zero")
	assert.Equal(t, fault.Unauthorized, update(otherId, 5), "not the authority")
	assert.Nil(t, update(authorityId, 250), "update")
	assert.Equal(t, uint64(250), info(t, p).BasePriceUsdCents, "price")
}

func TestTransferAuthority(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	p := setup(t, 0)
	transfer := func(caller, next account.Identity) error {
		return run(t, func(ctx *program.Context) error {
			return p.TransferAuthority(ctx, &ledger.TransferAuthorityArguments{Authority: caller, Mint: tokenMint, NewAuthority: next})
		}, caller)
	}

	assert.Equal(t, fault.InvalidAuthority, transfer(authorityId, account.Null), "null")
	assert.Nil(t, transfer(authorityId, otherId), "transfer")
	assert.Equal(t, otherId, info(t, p).Authority, "new authority")

	// the old authority loses all privilege
	assert.Equal(t, fault.Unauthorized, mintTokens(t, p, authorityId, 1), "old authority")
	assert.Nil(t, mintTokens(t, p, otherId, 1), "new authority")
}

// the token side effect failing leaves the counters alone
func TestTokenFailureAborts(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tokens := mocks.NewMockHandle(ctl)
	p := ledger.New(fixtures.LedgerProgram, nil, tokens)
	address, bump, _ := p.AuthorityAddress(tokenMint)

	tokens.EXPECT().InitialiseMint(gomock.Any(), tokenMint, uint8(record.TokenDecimals), address).Return(nil)
	assert.Nil(t, run(t, func(ctx *program.Context) error {
		return p.Initialise(ctx, &ledger.InitialiseArguments{Authority: authorityId, Mint: tokenMint, Bump: bump})
	}, authorityId), "initialise")

	tokens.EXPECT().MintTo(gomock.Any(), tokenMint, holderId, uint64(5), gomock.Any()).Return(fault.InvalidDerivation)
	assert.Equal(t, fault.InvalidDerivation, mintTokens(t, p, authorityId, 5), "mint fails")

	tokens.EXPECT().Mint(gomock.Any(), tokenMint).Return(&record.Mint{Authority: address, Decimals: record.TokenDecimals}, nil)
	assert.Equal(t, uint64(0), info(t, p).TotalMinted, "counter unchanged")
}

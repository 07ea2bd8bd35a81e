// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qwami_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/fixtures"
	"github.com/kwami-ai/kwamid/instruction"
	"github.com/kwami-ai/kwamid/ledger"
	"github.com/kwami-ai/kwamid/rpc/qwami"
	"github.com/kwami-ai/kwamid/rpc/submit"
	"github.com/kwami-ai/kwamid/token"
)

var mint = account.Identity{0x71}

func setup(t *testing.T) (*qwami.Qwami, *ledger.Program) {
	fixtures.SetupTestStorage(t)

	tokens := token.New()
	c, err := collection.New(fixtures.CollectionProgram, nil, tokens, nil)
	if nil != err {
		t.Fatalf("collection error: %s", err)
	}
	l := ledger.New(fixtures.LedgerProgram, &ledger.Configuration{MaximumSupply: 1000}, tokens)
	p := instruction.NewProcessor(&instruction.Programs{Collection: c, Ledger: l}, nil)
	return qwami.New(logger.New(fixtures.LogCategory), p), l
}

func signed(t *testing.T, arguments interface{}, nonce uint64, key *account.PrivateKey) *submit.Arguments {
	i, err := instruction.New(arguments, nonce)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}
	packed, err := i.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return &submit.Arguments{
		Instruction: packed,
		Signatures:  []instruction.Signature{packed.Sign(key)},
	}
}

func TestQwamiMintAndQuery(t *testing.T) {
	q, l := setup(t)
	defer fixtures.TeardownTestStorage()

	authority := fixtures.NewKey(t)
	holder := account.Identity{0x55}

	_, bump, err := l.AuthorityAddress(mint)
	assert.Nil(t, err, "authority address")

	var reply submit.Reply
	err = q.Submit(signed(t, &ledger.InitialiseArguments{
		Authority: authority.Identity(),
		Mint:      mint,
		Bump:      bump,
	}, 0, authority), &reply)
	assert.Nil(t, err, "initialise")
	assert.Equal(t, "initialize_ledger", reply.Instruction, "instruction name")

	err = q.Submit(signed(t, &ledger.MintArguments{
		Authority:   authority.Identity(),
		Mint:        mint,
		Destination: holder,
		Amount:      700,
	}, 1, authority), &reply)
	assert.Nil(t, err, "mint")

	err = q.Submit(signed(t, &ledger.MintArguments{
		Authority:   authority.Identity(),
		Mint:        mint,
		Destination: holder,
		Amount:      301,
	}, 2, authority), &reply)
	assert.Equal(t, fault.MaxSupplyExceeded, err, "over the ceiling")

	var info ledger.Info
	err = q.Ledger(&qwami.LedgerArguments{Mint: mint}, &info)
	assert.Nil(t, err, "ledger")
	assert.Equal(t, uint64(700), info.TotalMinted, "minted")
	assert.Equal(t, uint64(700), info.Circulating, "circulating")
	assert.Equal(t, uint64(1000), info.MaximumSupply, "maximum")

	var balance qwami.BalanceReply
	err = q.Balance(&qwami.BalanceArguments{Mint: mint, Owner: holder}, &balance)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(700), balance.Balance, "holder balance")
}

func TestQwamiRejectsCollection(t *testing.T) {
	q, _ := setup(t)
	defer fixtures.TeardownTestStorage()

	key := fixtures.NewKey(t)

	var reply submit.Reply
	err := q.Submit(signed(t, &collection.InitialiseArguments{
		Authority:      key.Identity(),
		CollectionMint: account.Identity{0x01},
	}, 0, key), &reply)
	assert.Equal(t, fault.WrongProgram, err, "collection instruction")

	var info ledger.Info
	err = q.Ledger(&qwami.LedgerArguments{Mint: mint}, &info)
	assert.Equal(t, fault.AccountNotFound, err, "missing ledger")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - mints and balances
//
// stands in for the token program the handlers call out to: a mint
// has an authority that must sign, by derivation, every issue of new
// units and balances are kept per mint and owner.
package token

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/derivation"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/storage"
)

// Handle - token operations used by the handlers
type Handle interface {
	InitialiseMint(*program.Context, account.Identity, uint8, account.Identity) error
	Mint(*program.Context, account.Identity) (*record.Mint, error)
	MintTo(*program.Context, account.Identity, account.Identity, uint64, derivation.Signer) error
	Burn(*program.Context, account.Identity, account.Identity, uint64) error
	Supply(*program.Context, account.Identity) (uint64, error)
	Balance(*program.Context, account.Identity, account.Identity) (uint64, error)
}

type tokens struct{}

// New - token handle over the Mints and Balances pools
func New() Handle {
	return &tokens{}
}

func balanceKey(mint account.Identity, owner account.Identity) []byte {
	key := make([]byte, 0, 2*account.IdentityLength)
	key = append(key, mint[:]...)
	return append(key, owner[:]...)
}

// InitialiseMint - create a mint with a fixed authority
func (t *tokens) InitialiseMint(ctx *program.Context, mint account.Identity, decimals uint8, authority account.Identity) error {
	if mint.IsNull() {
		return fault.InvalidIdentity
	}
	trx := ctx.Transaction()
	if trx.Has(storage.Pool.Mints, mint.Bytes()) {
		return fault.AlreadyInitialized
	}
	m := &record.Mint{
		Authority: authority,
		Decimals:  decimals,
		Supply:    0,
	}
	packed, err := m.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Mints, mint.Bytes(), packed)
	return nil
}

// Mint - read a mint, MintNotFound if absent
func (t *tokens) Mint(ctx *program.Context, mint account.Identity) (*record.Mint, error) {
	data := ctx.Transaction().Get(storage.Pool.Mints, mint.Bytes())
	if nil == data {
		return nil, fault.MintNotFound
	}
	return record.UnpackMint(data)
}

// MintTo - issue new units, signed by the mint authority
func (t *tokens) MintTo(ctx *program.Context, mint account.Identity, destination account.Identity, amount uint64, signer derivation.Signer) error {
	if destination.IsNull() {
		return fault.InvalidIdentity
	}
	m, err := t.Mint(ctx, mint)
	if nil != err {
		return err
	}
	err = signer.Verify(m.Authority)
	if nil != err {
		return err
	}

	supply := m.Supply + amount
	if supply < m.Supply {
		return fault.MathOverflow
	}

	trx := ctx.Transaction()
	key := balanceKey(mint, destination)
	balance, _ := trx.GetN(storage.Pool.Balances, key)
	if balance+amount < balance {
		return fault.MathOverflow
	}

	m.Supply = supply
	packed, err := m.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Mints, mint.Bytes(), packed)
	trx.PutN(storage.Pool.Balances, key, balance+amount)
	return nil
}

// Burn - destroy units from an owner's balance, the owner must sign
func (t *tokens) Burn(ctx *program.Context, mint account.Identity, owner account.Identity, amount uint64) error {
	err := ctx.RequireSigner(owner)
	if nil != err {
		return err
	}
	m, err := t.Mint(ctx, mint)
	if nil != err {
		return err
	}

	trx := ctx.Transaction()
	key := balanceKey(mint, owner)
	balance, _ := trx.GetN(storage.Pool.Balances, key)
	if balance < amount {
		return fault.InsufficientFunds
	}
	if m.Supply < amount {
		return fault.MathOverflow
	}

	m.Supply -= amount
	packed, err := m.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Mints, mint.Bytes(), packed)
	if balance == amount {
		trx.Delete(storage.Pool.Balances, key)
	} else {
		trx.PutN(storage.Pool.Balances, key, balance-amount)
	}
	return nil
}

// Supply - units in existence
func (t *tokens) Supply(ctx *program.Context, mint account.Identity) (uint64, error) {
	m, err := t.Mint(ctx, mint)
	if nil != err {
		return 0, err
	}
	return m.Supply, nil
}

// Balance - units held, zero for an unknown owner
func (t *tokens) Balance(ctx *program.Context, mint account.Identity, owner account.Identity) (uint64, error) {
	if !ctx.Transaction().Has(storage.Pool.Mints, mint.Bytes()) {
		return 0, fault.MintNotFound
	}
	balance, _ := ctx.Transaction().GetN(storage.Pool.Balances, balanceKey(mint, owner))
	return balance, nil
}

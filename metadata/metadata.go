// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadata - display records of minted assets
package metadata

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/derivation"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/storage"
	"github.com/kwami-ai/kwamid/token"
)

// Handle - metadata operations used by the handlers
type Handle interface {
	Create(*program.Context, derivation.Signer, account.Identity, string, string, string) error
	Get(*program.Context, account.Identity) (*record.Metadata, error)
}

type metadata struct {
	tokens token.Handle
}

// New - metadata handle, mint authorities are looked up through tokens
func New(tokens token.Handle) Handle {
	return &metadata{
		tokens: tokens,
	}
}

// Create - write the immutable metadata of a mint
//
// the signer must derive the mint authority, which also becomes the
// update authority
func (m *metadata) Create(ctx *program.Context, signer derivation.Signer, mint account.Identity, name string, symbol string, uri string) error {
	if len(name) > record.MaxNameLength {
		return fault.NameTooLong
	}
	if len(symbol) > record.MaxSymbolLength {
		return fault.SymbolTooLong
	}
	if len(uri) > record.MaxUriLength {
		return fault.UriTooLong
	}

	mintRecord, err := m.tokens.Mint(ctx, mint)
	if nil != err {
		return err
	}
	err = signer.Verify(mintRecord.Authority)
	if nil != err {
		return err
	}

	trx := ctx.Transaction()
	if trx.Has(storage.Pool.Metadata, mint.Bytes()) {
		return fault.AlreadyInitialized
	}

	md := &record.Metadata{
		Mint:                 mint,
		UpdateAuthority:      mintRecord.Authority,
		Name:                 name,
		Symbol:               symbol,
		Uri:                  uri,
		SellerFeeBasisPoints: 0,
		IsMutable:            false,
	}
	packed, err := md.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Metadata, mint.Bytes(), packed)
	return nil
}

// Get - read the metadata of a mint
func (m *metadata) Get(ctx *program.Context, mint account.Identity) (*record.Metadata, error) {
	data := ctx.Transaction().Get(storage.Pool.Metadata, mint.Bytes())
	if nil == data {
		return nil, fault.AccountNotFound
	}
	return record.UnpackMetadata(data)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collection

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/authority"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
)

// MintArguments - a new asset in a collection
type MintArguments struct {
	Owner          account.Identity   `json:"owner"`
	CollectionMint account.Identity   `json:"collectionMint"`
	AssetMint      account.Identity   `json:"assetMint"`
	DnaHash        record.Fingerprint `json:"dnaHash"`
	Name           string             `json:"name"`
	Symbol         string             `json:"symbol"`
	Uri            string             `json:"uri"`
}

// Mint - create an asset with a DNA not yet present in the collection
//
// checks run in the order: duplicate, full, name, symbol, uri
func (p *Program) Mint(ctx *program.Context, arguments *MintArguments) error {
	err := ctx.RequireSigner(arguments.Owner)
	if nil != err {
		return err
	}

	ca, authorityAddress, reg, registryAddress, err := p.loadCollection(ctx, arguments.CollectionMint)
	if nil != err {
		return err
	}

	err = reg.CanInsert(arguments.DnaHash)
	if nil != err {
		return err
	}
	if len(arguments.Name) > record.MaxNameLength {
		return fault.NameTooLong
	}
	if len(arguments.Symbol) > record.MaxSymbolLength {
		return fault.SymbolTooLong
	}
	if len(arguments.Uri) > record.MaxUriLength {
		return fault.UriTooLong
	}

	assetAddress, assetBump, err := p.AssetAddress(arguments.AssetMint)
	if nil != err {
		return err
	}
	if ctx.Exists(assetAddress) {
		return fault.AlreadyInitialized
	}

	err = p.tokens.InitialiseMint(ctx, arguments.AssetMint, record.AssetDecimals, authorityAddress)
	if nil != err {
		return err
	}

	now := ctx.Now()
	asset := &record.KwamiNft{
		Mint:        arguments.AssetMint,
		Owner:       arguments.Owner,
		DnaHash:     arguments.DnaHash,
		MintedAt:    now,
		UpdatedAt:   now,
		MetadataUri: arguments.Uri,
		Bump:        assetBump,
	}

	err = reg.Insert(arguments.DnaHash)
	if nil != err {
		return err
	}

	totalMinted := ca.TotalMinted + 1
	if totalMinted < ca.TotalMinted {
		return fault.MathOverflow
	}
	ca.TotalMinted = totalMinted

	signer := authority.Signer(p.id, record.CollectionAuthorityTag, ca.CollectionMint, ca.Bump)
	err = p.metadata.Create(ctx, signer, arguments.AssetMint, arguments.Name, arguments.Symbol, arguments.Uri)
	if nil != err {
		return err
	}

	err = storeRecord(ctx, assetAddress, asset)
	if nil != err {
		return err
	}
	err = reg.Store(ctx, registryAddress)
	if nil != err {
		return err
	}
	err = storeRecord(ctx, authorityAddress, ca)
	if nil != err {
		return err
	}

	ctx.Logf("Kwami NFT minted successfully!")
	ctx.Logf("DNA Hash: %s", arguments.DnaHash)
	ctx.Logf("Owner: %s", arguments.Owner)
	p.log.Infof("minted: %s  collection: %s  dna: %s", arguments.AssetMint, arguments.CollectionMint, arguments.DnaHash)
	return nil
}

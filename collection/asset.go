// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collection

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
)

// UpdateArguments - replace the metadata pointer of an asset
type UpdateArguments struct {
	Owner     account.Identity `json:"owner"`
	AssetMint account.Identity `json:"assetMint"`
	NewUri    string           `json:"newUri"`
}

// Update - owner only, the DNA is never touched
func (p *Program) Update(ctx *program.Context, arguments *UpdateArguments) error {
	asset, address, err := p.loadAsset(ctx, arguments.AssetMint)
	if nil != err {
		return err
	}
	err = checkOwner(ctx, asset, arguments.Owner)
	if nil != err {
		return err
	}
	if len(arguments.NewUri) > record.MaxUriLength {
		return fault.UriTooLong
	}

	asset.MetadataUri = arguments.NewUri
	touch(ctx, asset)

	err = storeRecord(ctx, address, asset)
	if nil != err {
		return err
	}

	ctx.Logf("Kwami metadata updated")
	p.log.Debugf("updated: %s  uri: %q", arguments.AssetMint, arguments.NewUri)
	return nil
}

// TransferArguments - change the owner of an asset
type TransferArguments struct {
	Owner     account.Identity `json:"owner"`
	AssetMint account.Identity `json:"assetMint"`
	NewOwner  account.Identity `json:"newOwner"`
}

// Transfer - owner only
//
// a null new owner is accepted unless the program rejects null owners
func (p *Program) Transfer(ctx *program.Context, arguments *TransferArguments) error {
	asset, address, err := p.loadAsset(ctx, arguments.AssetMint)
	if nil != err {
		return err
	}
	err = checkOwner(ctx, asset, arguments.Owner)
	if nil != err {
		return err
	}
	if p.rejectNullOwner && arguments.NewOwner.IsNull() {
		return fault.InvalidIdentity
	}
	if arguments.NewOwner.IsNull() {
		p.log.Warnf("asset: %s transferred to null owner", arguments.AssetMint)
	}

	asset.Owner = arguments.NewOwner
	touch(ctx, asset)

	err = storeRecord(ctx, address, asset)
	if nil != err {
		return err
	}

	ctx.Logf("Kwami transferred to: %s", arguments.NewOwner)
	p.log.Infof("transferred: %s  %s -> %s", arguments.AssetMint, arguments.Owner, arguments.NewOwner)
	return nil
}

// BurnArguments - destroy an asset
type BurnArguments struct {
	Owner          account.Identity `json:"owner"`
	CollectionMint account.Identity `json:"collectionMint"`
	AssetMint      account.Identity `json:"assetMint"`
}

// BurnResult - who receives the reclaimed record
type BurnResult struct {
	Beneficiary account.Identity   `json:"beneficiary"`
	DnaHash     record.Fingerprint `json:"dnaHash"`
}

// Burn - owner only, frees the DNA for a later mint
//
// an asset whose DNA is missing from the registry still burns
func (p *Program) Burn(ctx *program.Context, arguments *BurnArguments) (*BurnResult, error) {
	asset, address, err := p.loadAsset(ctx, arguments.AssetMint)
	if nil != err {
		return nil, err
	}
	err = checkOwner(ctx, asset, arguments.Owner)
	if nil != err {
		return nil, err
	}

	_, authorityAddress, reg, registryAddress, err := p.loadCollection(ctx, arguments.CollectionMint)
	if nil != err {
		return nil, err
	}

	// the asset mint is owned by the authority of the collection it was minted into
	m, err := p.tokens.Mint(ctx, asset.Mint)
	if nil != err {
		return nil, err
	}
	if m.Authority != authorityAddress {
		return nil, fault.WrongCollection
	}

	if !reg.Remove(asset.DnaHash) {
		p.log.Warnf("burn: %s  dna: %s not in registry", arguments.AssetMint, asset.DnaHash)
	}
	err = reg.Store(ctx, registryAddress)
	if nil != err {
		return nil, err
	}
	err = ctx.Close(address)
	if nil != err {
		return nil, err
	}

	ctx.Logf("Kwami NFT burned")
	ctx.Logf("DNA Hash freed: %s", asset.DnaHash)
	ctx.Logf("Refunded to: %s", asset.Owner)
	p.log.Infof("burned: %s  dna: %s", arguments.AssetMint, asset.DnaHash)
	return &BurnResult{
		Beneficiary: asset.Owner,
		DnaHash:     asset.DnaHash,
	}, nil
}

// updated_at never moves behind the stored value, even if the clock steps back
func touch(ctx *program.Context, asset *record.KwamiNft) {
	now := ctx.Now()
	if now < asset.UpdatedAt {
		now = asset.UpdatedAt
	}
	asset.UpdatedAt = now
}

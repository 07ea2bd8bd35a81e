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

// CheckDna - true if the DNA is live in the collection
func (p *Program) CheckDna(ctx *program.Context, collectionMint account.Identity, dnaHash record.Fingerprint) (bool, error) {
	_, _, reg, _, err := p.loadCollection(ctx, collectionMint)
	if nil != err {
		return false, err
	}
	exists := reg.Exists(dnaHash)
	ctx.Logf("DNA exists: %t", exists)
	return exists, nil
}

// AssetInfo - an asset record and its metadata
type AssetInfo struct {
	Address  account.Identity `json:"address"`
	Asset    *record.KwamiNft `json:"asset"`
	Metadata *record.Metadata `json:"metadata,omitempty"`
}

// Asset - look up an asset by its mint
func (p *Program) Asset(ctx *program.Context, assetMint account.Identity) (*AssetInfo, error) {
	asset, address, err := p.loadAsset(ctx, assetMint)
	if nil != err {
		return nil, err
	}
	info := &AssetInfo{
		Address: address,
		Asset:   asset,
	}
	md, err := p.metadata.Get(ctx, assetMint)
	if nil == err {
		info.Metadata = md
	} else if fault.AccountNotFound != err {
		return nil, err
	}
	return info, nil
}

// CollectionInfo - authority record and registry occupancy
type CollectionInfo struct {
	AuthorityAddress account.Identity            `json:"authorityAddress"`
	RegistryAddress  account.Identity            `json:"registryAddress"`
	Authority        *record.CollectionAuthority `json:"authority"`
	DnaCount         uint64                      `json:"dnaCount"`
	Capacity         int                         `json:"capacity"`
}

// Collection - look up a collection by its mint
func (p *Program) Collection(ctx *program.Context, collectionMint account.Identity) (*CollectionInfo, error) {
	ca, authorityAddress, reg, registryAddress, err := p.loadCollection(ctx, collectionMint)
	if nil != err {
		return nil, err
	}
	return &CollectionInfo{
		AuthorityAddress: authorityAddress,
		RegistryAddress:  registryAddress,
		Authority:        ca,
		DnaCount:         reg.Count(),
		Capacity:         reg.Capacity(),
	}, nil
}

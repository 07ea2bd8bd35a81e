// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package collection - Kwami asset lifecycle
//
// a collection is an authority record, a DNA registry and the asset
// records minted into it.  Every handler runs inside one program
// context so a failure at any step leaves no trace.
package collection

import (
	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/authority"
	"github.com/kwami-ai/kwamid/derivation"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/metadata"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/registry"
	"github.com/kwami-ai/kwamid/token"
)

// Configuration - collection options
type Configuration struct {
	RejectNullOwner bool `gluamapper:"reject_null_owner" json:"reject_null_owner"`
	Capacity        int  `gluamapper:"capacity" json:"capacity"`
}

// Program - the collection program
type Program struct {
	log             *logger.L
	id              account.Identity
	tokens          token.Handle
	metadata        metadata.Handle
	rejectNullOwner bool
	capacity        int
}

// New - create the program, zero capacity means the storage bound
func New(id account.Identity, configuration *Configuration, tokens token.Handle, md metadata.Handle) (*Program, error) {
	capacity := record.MaxDNA
	rejectNullOwner := false
	if nil != configuration {
		if configuration.Capacity < 0 || configuration.Capacity > record.MaxDNA {
			return nil, fault.InvalidCount
		}
		if 0 != configuration.Capacity {
			capacity = configuration.Capacity
		}
		rejectNullOwner = configuration.RejectNullOwner
	}
	return &Program{
		log:             logger.New("collection"),
		id:              id,
		tokens:          tokens,
		metadata:        md,
		rejectNullOwner: rejectNullOwner,
		capacity:        capacity,
	}, nil
}

// Id - program identity
func (p *Program) Id() account.Identity {
	return p.id
}

// AuthorityAddress - canonical address and bump of a collection authority
func (p *Program) AuthorityAddress(collectionMint account.Identity) (account.Identity, uint8, error) {
	return authority.Locate(p.id, record.CollectionAuthorityTag, collectionMint)
}

// RegistryAddress - address of a collection's DNA registry
func (p *Program) RegistryAddress(collectionMint account.Identity) (account.Identity, error) {
	if collectionMint.IsNull() {
		return account.Null, fault.InvalidIdentity
	}
	return registry.Address(p.id, collectionMint)
}

// AssetAddress - canonical address and bump of an asset record
func (p *Program) AssetAddress(assetMint account.Identity) (account.Identity, uint8, error) {
	if assetMint.IsNull() {
		return account.Null, 0, fault.InvalidIdentity
	}
	return derivation.FindAddress([][]byte{[]byte(record.KwamiNftTag), assetMint.Bytes()}, p.id)
}

// load the authority and registry of a collection
func (p *Program) loadCollection(ctx *program.Context, collectionMint account.Identity) (*record.CollectionAuthority, account.Identity, *registry.Registry, account.Identity, error) {
	authorityAddress, _, err := p.AuthorityAddress(collectionMint)
	if nil != err {
		return nil, account.Null, nil, account.Null, err
	}
	registryAddress, err := p.RegistryAddress(collectionMint)
	if nil != err {
		return nil, account.Null, nil, account.Null, err
	}

	data, err := ctx.Load(authorityAddress)
	if nil != err {
		return nil, account.Null, nil, account.Null, err
	}
	ca, err := record.UnpackCollectionAuthority(data)
	if nil != err {
		return nil, account.Null, nil, account.Null, err
	}

	reg, err := registry.Load(ctx, registryAddress)
	if nil != err {
		return nil, account.Null, nil, account.Null, err
	}
	err = reg.SetCapacity(p.capacity)
	if nil != err {
		return nil, account.Null, nil, account.Null, err
	}
	return ca, authorityAddress, reg, registryAddress, nil
}

func (p *Program) loadAsset(ctx *program.Context, assetMint account.Identity) (*record.KwamiNft, account.Identity, error) {
	address, _, err := p.AssetAddress(assetMint)
	if nil != err {
		return nil, account.Null, err
	}
	data, err := ctx.Load(address)
	if nil != err {
		return nil, account.Null, err
	}
	asset, err := record.UnpackKwamiNft(data)
	if nil != err {
		return nil, account.Null, err
	}
	return asset, address, nil
}

func storeRecord(ctx *program.Context, address account.Identity, r interface {
	Pack() (record.Packed, error)
}) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	return ctx.Store(address, packed)
}

// owner must have signed and must hold the asset
func checkOwner(ctx *program.Context, asset *record.KwamiNft, caller account.Identity) error {
	err := ctx.RequireSigner(caller)
	if nil != err {
		return err
	}
	if caller != asset.Owner {
		return fault.InvalidOwner
	}
	return nil
}

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
	"github.com/kwami-ai/kwamid/registry"
)

// InitialiseArguments - create a collection
type InitialiseArguments struct {
	Authority      account.Identity `json:"authority"`
	CollectionMint account.Identity `json:"collectionMint"`
	Bump           uint8            `json:"bump"`
}

// Initialise - authority record, empty registry and the collection mint
func (p *Program) Initialise(ctx *program.Context, arguments *InitialiseArguments) error {
	authorityAddress, err := authority.Initialise(ctx, p.id, record.CollectionAuthorityTag, arguments.Authority, arguments.CollectionMint, arguments.Bump)
	if nil != err {
		return err
	}
	registryAddress, err := p.RegistryAddress(arguments.CollectionMint)
	if nil != err {
		return err
	}
	if ctx.Exists(registryAddress) {
		return fault.AlreadyInitialized
	}

	err = p.tokens.InitialiseMint(ctx, arguments.CollectionMint, record.AssetDecimals, authorityAddress)
	if nil != err {
		return err
	}

	ca := &record.CollectionAuthority{
		Authority:      arguments.Authority,
		CollectionMint: arguments.CollectionMint,
		TotalMinted:    0,
		Bump:           arguments.Bump,
	}
	err = storeRecord(ctx, authorityAddress, ca)
	if nil != err {
		return err
	}

	reg := registry.New(arguments.Authority, arguments.CollectionMint)
	err = reg.Store(ctx, registryAddress)
	if nil != err {
		return err
	}

	ctx.Logf("Kwami collection initialized")
	ctx.Logf("Authority: %s", arguments.Authority)
	ctx.Logf("Collection mint: %s", arguments.CollectionMint)
	p.log.Infof("initialised collection: %s  authority: %s", arguments.CollectionMint, arguments.Authority)
	return nil
}

// TransferAuthorityArguments - hand the collection to a new authority
type TransferAuthorityArguments struct {
	Authority      account.Identity `json:"authority"`
	CollectionMint account.Identity `json:"collectionMint"`
	NewAuthority   account.Identity `json:"newAuthority"`
}

// TransferAuthority - replace the collection authority
//
// the registry carries a copy of the authority so both change together
func (p *Program) TransferAuthority(ctx *program.Context, arguments *TransferAuthorityArguments) error {
	ca, authorityAddress, reg, registryAddress, err := p.loadCollection(ctx, arguments.CollectionMint)
	if nil != err {
		return err
	}
	err = authority.Check(ctx, ca.Authority, arguments.Authority)
	if nil != err {
		return err
	}
	err = authority.Transfer(&ca.Authority, arguments.NewAuthority)
	if nil != err {
		return err
	}
	reg.SetAuthority(arguments.NewAuthority)

	err = storeRecord(ctx, authorityAddress, ca)
	if nil != err {
		return err
	}
	err = reg.Store(ctx, registryAddress)
	if nil != err {
		return err
	}

	ctx.Logf("Collection authority transferred to: %s", arguments.NewAuthority)
	p.log.Infof("collection: %s  authority: %s -> %s", arguments.CollectionMint, arguments.Authority, arguments.NewAuthority)
	return nil
}

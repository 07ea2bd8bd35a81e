// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"sort"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/ledger"
)

// Programs - the handlers an instruction can be routed to
type Programs struct {
	Collection *collection.Program
	Ledger     *ledger.Program
}

// Accounts - what an instruction may write and what it must lock
type Accounts struct {
	// addresses the handler is allowed to store or close
	Writable []account.Identity

	// writable addresses plus the mints whose records or balances change
	Locked []account.Identity
}

// Accounts - derive the account set of an instruction
func (programs *Programs) Accounts(instruction *Instruction) (*Accounts, error) {
	writable := []account.Identity{}
	mints := []account.Identity{}

	add := func(address account.Identity, _ uint8, err error) error {
		if nil != err {
			return err
		}
		writable = append(writable, address)
		return nil
	}
	addRegistry := func(address account.Identity, err error) error {
		return add(address, 0, err)
	}

	var err error

	switch arguments := instruction.Arguments.(type) {
	case *collection.InitialiseArguments:
		c := programs.Collection
		err = firstError(
			add(c.AuthorityAddress(arguments.CollectionMint)),
			addRegistry(c.RegistryAddress(arguments.CollectionMint)),
		)
		mints = append(mints, arguments.CollectionMint)

	case *collection.MintArguments:
		c := programs.Collection
		err = firstError(
			add(c.AuthorityAddress(arguments.CollectionMint)),
			addRegistry(c.RegistryAddress(arguments.CollectionMint)),
			add(c.AssetAddress(arguments.AssetMint)),
		)
		mints = append(mints, arguments.CollectionMint, arguments.AssetMint)

	case *collection.UpdateArguments:
		err = add(programs.Collection.AssetAddress(arguments.AssetMint))

	case *collection.TransferArguments:
		err = add(programs.Collection.AssetAddress(arguments.AssetMint))

	case *collection.BurnArguments:
		c := programs.Collection
		err = firstError(
			addRegistry(c.RegistryAddress(arguments.CollectionMint)),
			add(c.AssetAddress(arguments.AssetMint)),
		)
		mints = append(mints, arguments.CollectionMint)

	case *collection.TransferAuthorityArguments:
		c := programs.Collection
		err = firstError(
			add(c.AuthorityAddress(arguments.CollectionMint)),
			addRegistry(c.RegistryAddress(arguments.CollectionMint)),
		)

	case *ledger.InitialiseArguments:
		err = add(programs.Ledger.AuthorityAddress(arguments.Mint))
		mints = append(mints, arguments.Mint)

	case *ledger.MintArguments:
		err = add(programs.Ledger.AuthorityAddress(arguments.Mint))
		mints = append(mints, arguments.Mint)

	case *ledger.BurnArguments:
		err = add(programs.Ledger.AuthorityAddress(arguments.Mint))
		mints = append(mints, arguments.Mint)

	case *ledger.PriceArguments:
		err = add(programs.Ledger.AuthorityAddress(arguments.Mint))

	case *ledger.TransferAuthorityArguments:
		err = add(programs.Ledger.AuthorityAddress(arguments.Mint))

	default:
		return nil, fault.UnknownInstruction
	}

	if nil != err {
		return nil, err
	}

	return &Accounts{
		Writable: writable,
		Locked:   sortedUnique(append(append([]account.Identity{}, writable...), mints...)),
	}, nil
}

func firstError(errors ...error) error {
	for _, err := range errors {
		if nil != err {
			return err
		}
	}
	return nil
}

func sortedUnique(addresses []account.Identity) []account.Identity {
	sort.Slice(addresses, func(i, j int) bool {
		return addresses[i].Compare(addresses[j]) < 0
	})
	result := make([]account.Identity, 0, len(addresses))
	for i, a := range addresses {
		if 0 == i || a != addresses[i-1] {
			result = append(result, a)
		}
	}
	return result
}

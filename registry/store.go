// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/derivation"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
)

// Address - where the registry of a collection lives
func Address(programId account.Identity, collectionMint account.Identity) (account.Identity, error) {
	address, _, err := derivation.FindAddress([][]byte{[]byte(record.DnaRegistryTag), collectionMint.Bytes()}, programId)
	return address, err
}

// Load - read and index a stored registry
func Load(ctx *program.Context, address account.Identity) (*Registry, error) {
	data, err := ctx.Load(address)
	if nil != err {
		return nil, err
	}
	r, err := record.UnpackDnaRegistry(data)
	if nil != err {
		return nil, err
	}
	return FromRecord(r)
}

// Store - write the registry back
func (reg *Registry) Store(ctx *program.Context, address account.Identity) error {
	packed, err := reg.Record().Pack()
	if nil != err {
		return err
	}
	return ctx.Store(address, packed)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - the signing authority of a collection or mint
//
// the record lives at the address derived from a tag and its subject
// and acts as a signer for itself by presenting the same seeds.
package authority

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/derivation"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/program"
)

// Locate - canonical address and bump of an authority record
func Locate(programId account.Identity, tag string, subject account.Identity) (account.Identity, uint8, error) {
	if subject.IsNull() {
		return account.Null, 0, fault.InvalidAuthority
	}
	return derivation.FindAddress([][]byte{[]byte(tag), subject.Bytes()}, programId)
}

// Initialise - checks for a new authority record
//
// the authority becomes the privileged identity, the bump must be the
// canonical one and the address must still be free
func Initialise(ctx *program.Context, programId account.Identity, tag string, authority account.Identity, subject account.Identity, bump uint8) (account.Identity, error) {
	if authority.IsNull() {
		return account.Null, fault.InvalidAuthority
	}
	err := ctx.RequireSigner(authority)
	if nil != err {
		return account.Null, err
	}
	address, canonical, err := Locate(programId, tag, subject)
	if nil != err {
		return account.Null, err
	}
	if bump != canonical {
		return account.Null, fault.InvalidBump
	}
	if ctx.Exists(address) {
		return account.Null, fault.AlreadyInitialized
	}
	return address, nil
}

// Signer - the record's capability for its own address
func Signer(programId account.Identity, tag string, subject account.Identity, bump uint8) derivation.Signer {
	return derivation.NewSigner(programId, tag, subject, bump)
}

// Check - the caller must be the recorded authority and have signed
func Check(ctx *program.Context, recorded account.Identity, caller account.Identity) error {
	err := ctx.RequireSigner(caller)
	if nil != err {
		return err
	}
	if caller != recorded {
		return fault.Unauthorized
	}
	return nil
}

// Transfer - validate a new authority, null is rejected
func Transfer(current *account.Identity, newAuthority account.Identity) error {
	if newAuthority.IsNull() {
		return fault.InvalidAuthority
	}
	*current = newAuthority
	return nil
}

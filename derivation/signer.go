// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
)

// Signer - capability to act for a derived address
//
// holding the seeds is the proof, Verify recomputes the address
type Signer struct {
	Program account.Identity
	Seeds   [][]byte
	Bump    uint8
}

// NewSigner - capability for a tag and subject
func NewSigner(program account.Identity, tag string, subject account.Identity, bump uint8) Signer {
	return Signer{
		Program: program,
		Seeds:   [][]byte{[]byte(tag), subject.Bytes()},
		Bump:    bump,
	}
}

// Address - the address these seeds derive
func (signer Signer) Address() (account.Identity, error) {
	return CreateAddress(signer.Seeds, signer.Bump, signer.Program)
}

// Verify - accept only if the seeds derive the expected address
func (signer Signer) Verify(expected account.Identity) error {
	address, err := signer.Address()
	if nil != err || address != expected {
		return fault.InvalidDerivation
	}
	return nil
}

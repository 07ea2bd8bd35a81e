// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/ledger"
)

// IdLength - bytes in an instruction id
const IdLength = 32

// limit on any string field of a packed instruction
const maxStringLength = 1024

// Packed - packed instruction bytes, the signed message
type Packed []byte

// Id - SHA3-256 of the packed instruction
type Id [IdLength]byte

// Instruction - a decoded instruction
//
// Arguments is a pointer to one of the handler argument structures,
// the tag is derived from its type
type Instruction struct {
	Tag       TagType
	Arguments interface{}
	Nonce     uint64
}

// Signature - one signer of a packed instruction
type Signature struct {
	Identity  account.Identity  `json:"identity"`
	Signature account.Signature `json:"signature"`
}

// New - wrap handler arguments, UnknownInstruction for any other type
func New(arguments interface{}, nonce uint64) (*Instruction, error) {
	tag := InvalidTag
	switch arguments.(type) {
	case *collection.InitialiseArguments:
		tag = InitialiseCollectionTag
	case *collection.MintArguments:
		tag = MintKwamiTag
	case *collection.UpdateArguments:
		tag = UpdateMetadataTag
	case *collection.TransferArguments:
		tag = TransferKwamiTag
	case *collection.BurnArguments:
		tag = BurnKwamiTag
	case *collection.TransferAuthorityArguments:
		tag = TransferCollectionAuthorityTag
	case *ledger.InitialiseArguments:
		tag = InitialiseLedgerTag
	case *ledger.MintArguments:
		tag = MintTokensTag
	case *ledger.BurnArguments:
		tag = BurnTokensTag
	case *ledger.PriceArguments:
		tag = UpdateBasePriceTag
	case *ledger.TransferAuthorityArguments:
		tag = TransferLedgerAuthorityTag
	default:
		return nil, fault.UnknownInstruction
	}
	return &Instruction{
		Tag:       tag,
		Arguments: arguments,
		Nonce:     nonce,
	}, nil
}

// Id - instruction id of packed bytes
func (packed Packed) Id() Id {
	return Id(sha3.Sum256(packed))
}

// Sign - signature pair for the packed bytes
func (packed Packed) Sign(key *account.PrivateKey) Signature {
	return Signature{
		Identity:  key.Identity(),
		Signature: key.Sign(packed),
	}
}

// MarshalText - packed bytes as hex
func (packed Packed) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(packed)))
	hex.Encode(buffer, packed)
	return buffer, nil
}

// UnmarshalText - packed bytes from hex
func (packed *Packed) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*packed = buffer[:n]
	return nil
}

// String - hex id
func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - id for %#v
func (id Id) GoString() string {
	return "<instruction:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - id as hex
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - id from hex
func (id *Id) UnmarshalText(s []byte) error {
	if hex.EncodedLen(IdLength) != len(s) {
		return fault.InvalidInstructionId
	}
	_, err := hex.Decode(id[:], s)
	return err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/ledger"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/util"
)

// Pack - Varint64(tag) followed by fields in order as the argument
// structure with the nonce last
func (instruction *Instruction) Pack() (Packed, error) {

	// the arguments type must agree with the tag
	expected, err := New(instruction.Arguments, instruction.Nonce)
	if nil != err {
		return nil, err
	}
	if expected.Tag != instruction.Tag {
		return nil, fault.UnknownInstruction
	}

	message := util.ToVarint64(uint64(instruction.Tag))

	switch arguments := instruction.Arguments.(type) {
	case *collection.InitialiseArguments:
		message = appendIdentity(message, arguments.Authority)
		message = appendIdentity(message, arguments.CollectionMint)
		message = appendUint8(message, arguments.Bump)

	case *collection.MintArguments:
		for _, s := range []string{arguments.Name, arguments.Symbol, arguments.Uri} {
			if len(s) > maxStringLength {
				return nil, fault.RecordTooLong
			}
		}
		message = appendIdentity(message, arguments.Owner)
		message = appendIdentity(message, arguments.CollectionMint)
		message = appendIdentity(message, arguments.AssetMint)
		message = appendFingerprint(message, arguments.DnaHash)
		message = appendString(message, arguments.Name)
		message = appendString(message, arguments.Symbol)
		message = appendString(message, arguments.Uri)

	case *collection.UpdateArguments:
		if len(arguments.NewUri) > maxStringLength {
			return nil, fault.RecordTooLong
		}
		message = appendIdentity(message, arguments.Owner)
		message = appendIdentity(message, arguments.AssetMint)
		message = appendString(message, arguments.NewUri)

	case *collection.TransferArguments:
		message = appendIdentity(message, arguments.Owner)
		message = appendIdentity(message, arguments.AssetMint)
		message = appendIdentity(message, arguments.NewOwner)

	case *collection.BurnArguments:
		message = appendIdentity(message, arguments.Owner)
		message = appendIdentity(message, arguments.CollectionMint)
		message = appendIdentity(message, arguments.AssetMint)

	case *collection.TransferAuthorityArguments:
		message = appendIdentity(message, arguments.Authority)
		message = appendIdentity(message, arguments.CollectionMint)
		message = appendIdentity(message, arguments.NewAuthority)

	case *ledger.InitialiseArguments:
		message = appendIdentity(message, arguments.Authority)
		message = appendIdentity(message, arguments.Mint)
		message = appendUint8(message, arguments.Bump)

	case *ledger.MintArguments:
		message = appendIdentity(message, arguments.Authority)
		message = appendIdentity(message, arguments.Mint)
		message = appendIdentity(message, arguments.Destination)
		message = appendUint64(message, arguments.Amount)

	case *ledger.BurnArguments:
		message = appendIdentity(message, arguments.Owner)
		message = appendIdentity(message, arguments.Mint)
		message = appendUint64(message, arguments.Amount)

	case *ledger.PriceArguments:
		message = appendIdentity(message, arguments.Authority)
		message = appendIdentity(message, arguments.Mint)
		message = appendUint64(message, arguments.Price)

	case *ledger.TransferAuthorityArguments:
		message = appendIdentity(message, arguments.Authority)
		message = appendIdentity(message, arguments.Mint)
		message = appendIdentity(message, arguments.NewAuthority)

	default:
		return nil, fault.UnknownInstruction
	}

	message = appendUint64(message, instruction.Nonce)
	return Packed(message), nil
}

func appendIdentity(buffer []byte, id account.Identity) []byte {
	return append(buffer, id[:]...)
}

func appendFingerprint(buffer []byte, fp record.Fingerprint) []byte {
	return append(buffer, fp[:]...)
}

func appendUint8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

func appendUint64(buffer []byte, value uint64) []byte {
	return util.AppendVarint64(buffer, value)
}

func appendString(buffer []byte, s string) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

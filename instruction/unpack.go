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

// Unpack - turn a byte slice into an instruction
//
// every byte must be consumed, trailing data is RecordTooLong
func (packed Packed) Unpack() (*Instruction, error) {
	r := &reader{buffer: packed}
	tag := TagType(r.uint64())
	if nil != r.err {
		return nil, r.err
	}

	var arguments interface{}
	switch tag {

	case InitialiseCollectionTag:
		arguments = &collection.InitialiseArguments{
			Authority:      r.identity(),
			CollectionMint: r.identity(),
			Bump:           r.uint8(),
		}

	case MintKwamiTag:
		arguments = &collection.MintArguments{
			Owner:          r.identity(),
			CollectionMint: r.identity(),
			AssetMint:      r.identity(),
			DnaHash:        r.fingerprint(),
			Name:           r.string(),
			Symbol:         r.string(),
			Uri:            r.string(),
		}

	case UpdateMetadataTag:
		arguments = &collection.UpdateArguments{
			Owner:     r.identity(),
			AssetMint: r.identity(),
			NewUri:    r.string(),
		}

	case TransferKwamiTag:
		arguments = &collection.TransferArguments{
			Owner:     r.identity(),
			AssetMint: r.identity(),
			NewOwner:  r.identity(),
		}

	case BurnKwamiTag:
		arguments = &collection.BurnArguments{
			Owner:          r.identity(),
			CollectionMint: r.identity(),
			AssetMint:      r.identity(),
		}

	case TransferCollectionAuthorityTag:
		arguments = &collection.TransferAuthorityArguments{
			Authority:      r.identity(),
			CollectionMint: r.identity(),
			NewAuthority:   r.identity(),
		}

	case InitialiseLedgerTag:
		arguments = &ledger.InitialiseArguments{
			Authority: r.identity(),
			Mint:      r.identity(),
			Bump:      r.uint8(),
		}

	case MintTokensTag:
		arguments = &ledger.MintArguments{
			Authority:   r.identity(),
			Mint:        r.identity(),
			Destination: r.identity(),
			Amount:      r.uint64(),
		}

	case BurnTokensTag:
		arguments = &ledger.BurnArguments{
			Owner:  r.identity(),
			Mint:   r.identity(),
			Amount: r.uint64(),
		}

	case UpdateBasePriceTag:
		arguments = &ledger.PriceArguments{
			Authority: r.identity(),
			Mint:      r.identity(),
			Price:     r.uint64(),
		}

	case TransferLedgerAuthorityTag:
		arguments = &ledger.TransferAuthorityArguments{
			Authority:    r.identity(),
			Mint:         r.identity(),
			NewAuthority: r.identity(),
		}

	default:
		return nil, fault.UnknownInstruction
	}

	nonce := r.uint64()
	if nil != r.err {
		return nil, r.err
	}
	if r.n != len(packed) {
		return nil, fault.RecordTooLong
	}

	return &Instruction{
		Tag:       tag,
		Arguments: arguments,
		Nonce:     nonce,
	}, nil
}

// sequential reader, the first failure sticks
//
// composite literal fields are evaluated in order so the reads above
// follow the packed layout
type reader struct {
	buffer []byte
	n      int
	err    error
}

func (r *reader) take(count int) []byte {
	if nil != r.err {
		return nil
	}
	if r.n+count > len(r.buffer) {
		r.err = fault.RecordTruncated
		return nil
	}
	b := r.buffer[r.n : r.n+count]
	r.n += count
	return b
}

func (r *reader) identity() account.Identity {
	id := account.Identity{}
	copy(id[:], r.take(account.IdentityLength))
	return id
}

func (r *reader) fingerprint() record.Fingerprint {
	fp := record.Fingerprint{}
	copy(fp[:], r.take(record.FingerprintLength))
	return fp
}

func (r *reader) uint8() uint8 {
	b := r.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

func (r *reader) uint64() uint64 {
	if nil != r.err {
		return 0
	}
	value, count := util.FromVarint64(r.buffer[r.n:])
	if 0 == count {
		r.err = fault.RecordTruncated
		return 0
	}
	r.n += count
	return value
}

func (r *reader) string() string {
	if nil != r.err {
		return ""
	}
	length, count := util.ClippedVarint64(r.buffer[r.n:], 0, maxStringLength)
	if 0 == count {
		r.err = fault.RecordTruncated
		return ""
	}
	r.n += count
	return string(r.take(length))
}

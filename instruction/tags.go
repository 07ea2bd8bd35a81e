// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction types
// this is encoded a Varint64 at start of the packed instruction
const (
	// collection program
	InitialiseCollectionTag TagType = iota + 1
	MintKwamiTag
	UpdateMetadataTag
	TransferKwamiTag
	BurnKwamiTag
	TransferCollectionAuthorityTag

	// ledger program
	InitialiseLedgerTag TagType = iota + 10
	MintTokensTag
	BurnTokensTag
	UpdateBasePriceTag
	TransferLedgerAuthorityTag

	// this item must be last
	InvalidTag
)

var tagNames = map[TagType]string{
	InitialiseCollectionTag:        "initialize",
	MintKwamiTag:                   "mint_kwami",
	UpdateMetadataTag:              "update_metadata",
	TransferKwamiTag:               "transfer_kwami",
	BurnKwamiTag:                   "burn_kwami",
	TransferCollectionAuthorityTag: "transfer_collection_authority",
	InitialiseLedgerTag:            "initialize_ledger",
	MintTokensTag:                  "mint_tokens",
	BurnTokensTag:                  "burn_tokens",
	UpdateBasePriceTag:             "update_base_price",
	TransferLedgerAuthorityTag:     "transfer_authority",
}

// String - instruction name as clients know it
func (tag TagType) String() string {
	if s, ok := tagNames[tag]; ok {
		return s
	}
	return "unknown"
}

// IsCollection - true for tags handled by the collection program
func (tag TagType) IsCollection() bool {
	return tag >= InitialiseCollectionTag && tag <= TransferCollectionAuthorityTag
}

// IsLedger - true for tags handled by the ledger program
func (tag TagType) IsLedger() bool {
	return tag >= InitialiseLedgerTag && tag <= TransferLedgerAuthorityTag
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

// seed tags for derived addresses
const (
	CollectionAuthorityTag = "collection-authority"
	DnaRegistryTag         = "dna-registry"
	KwamiNftTag            = "kwami-nft"
	TokenAuthorityTag      = "token-authority"
)

// field bounds
const (
	MaxDNA          = 1000
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxUriLength    = 200
)

// DiscriminatorLength - bytes of account type prefix
const DiscriminatorLength = 8

// account sizes including the discriminator
const (
	CollectionAuthoritySize = DiscriminatorLength + 32 + 32 + 8 + 1
	DnaRegistrySize         = DiscriminatorLength + 32 + 32 + (4 + MaxDNA*FingerprintLength) + 8
	KwamiNftSize            = DiscriminatorLength + 32 + 32 + FingerprintLength + 8 + 8 + (4 + MaxUriLength) + 1
	TokenAuthoritySize      = DiscriminatorLength + 32 + 32 + 8 + 8 + 8 + 1
)

// token decimals
const (
	TokenDecimals = 9
	AssetDecimals = 0
)

// DefaultBasePrice - initial quote in US cents
const DefaultBasePrice = 1

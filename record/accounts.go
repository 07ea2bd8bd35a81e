// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
)

// discriminators
var (
	collectionAuthorityDiscriminator = NewDiscriminator("CollectionAuthority")
	dnaRegistryDiscriminator         = NewDiscriminator("DnaRegistry")
	kwamiNftDiscriminator            = NewDiscriminator("KwamiNft")
	tokenAuthorityDiscriminator      = NewDiscriminator("TokenAuthority")
	mintDiscriminator                = NewDiscriminator("Mint")
	metadataDiscriminator            = NewDiscriminator("Metadata")
)

// CollectionAuthority - signing authority of one collection
type CollectionAuthority struct {
	Authority      account.Identity `json:"authority"`
	CollectionMint account.Identity `json:"collectionMint"`
	TotalMinted    uint64           `json:"totalMinted"`
	Bump           uint8            `json:"bump"`
}

// DnaRegistry - the fingerprints live in one collection
type DnaRegistry struct {
	Authority  account.Identity `json:"authority"`
	Collection account.Identity `json:"collection"`
	DnaHashes  []Fingerprint    `json:"dnaHashes"`
	DnaCount   uint64           `json:"dnaCount"`
}

// KwamiNft - one minted asset
type KwamiNft struct {
	Mint        account.Identity `json:"mint"`
	Owner       account.Identity `json:"owner"`
	DnaHash     Fingerprint      `json:"dnaHash"`
	MintedAt    int64            `json:"mintedAt"`
	UpdatedAt   int64            `json:"updatedAt"`
	MetadataUri string           `json:"metadataUri"`
	Bump        uint8            `json:"bump"`
}

// TokenAuthority - signing authority and counters of the fungible mint
type TokenAuthority struct {
	Authority         account.Identity `json:"authority"`
	Mint              account.Identity `json:"mint"`
	TotalMinted       uint64           `json:"totalMinted"`
	TotalBurned       uint64           `json:"totalBurned"`
	BasePriceUsdCents uint64           `json:"basePriceUsdCents"`
	Bump              uint8            `json:"bump"`
}

// Pack - fixed size layout
func (c *CollectionAuthority) Pack() (Packed, error) {
	buffer := appendDiscriminator(make([]byte, 0, CollectionAuthoritySize), collectionAuthorityDiscriminator)
	buffer = appendIdentity(buffer, c.Authority)
	buffer = appendIdentity(buffer, c.CollectionMint)
	buffer = appendUint64(buffer, c.TotalMinted)
	buffer = appendUint8(buffer, c.Bump)
	return pad(buffer, CollectionAuthoritySize)
}

// UnpackCollectionAuthority - decode a packed collection authority
func UnpackCollectionAuthority(buffer []byte) (*CollectionAuthority, error) {
	u := newUnpacker(buffer, collectionAuthorityDiscriminator)
	c := &CollectionAuthority{
		Authority:      u.identity(),
		CollectionMint: u.identity(),
		TotalMinted:    u.uint64(),
		Bump:           u.uint8(),
	}
	if nil != u.err {
		return nil, u.err
	}
	return c, nil
}

// Pack - fixed size layout
func (r *DnaRegistry) Pack() (Packed, error) {
	if len(r.DnaHashes) > MaxDNA {
		return nil, fault.RecordTooLong
	}
	buffer := appendDiscriminator(make([]byte, 0, DnaRegistrySize), dnaRegistryDiscriminator)
	buffer = appendIdentity(buffer, r.Authority)
	buffer = appendIdentity(buffer, r.Collection)
	buffer = appendUint32(buffer, uint32(len(r.DnaHashes)))
	for _, fp := range r.DnaHashes {
		buffer = appendFingerprint(buffer, fp)
	}
	buffer = appendUint64(buffer, r.DnaCount)
	return pad(buffer, DnaRegistrySize)
}

// UnpackDnaRegistry - decode a packed registry
func UnpackDnaRegistry(buffer []byte) (*DnaRegistry, error) {
	u := newUnpacker(buffer, dnaRegistryDiscriminator)
	r := &DnaRegistry{
		Authority:  u.identity(),
		Collection: u.identity(),
	}
	count := u.uint32()
	if nil == u.err && count > MaxDNA {
		return nil, fault.RecordTooLong
	}
	r.DnaHashes = make([]Fingerprint, 0, count)
	for i := uint32(0); i < count && nil == u.err; i += 1 {
		r.DnaHashes = append(r.DnaHashes, u.fingerprint())
	}
	r.DnaCount = u.uint64()
	if nil != u.err {
		return nil, u.err
	}
	return r, nil
}

// Pack - fixed size layout
func (k *KwamiNft) Pack() (Packed, error) {
	if len(k.MetadataUri) > MaxUriLength {
		return nil, fault.UriTooLong
	}
	buffer := appendDiscriminator(make([]byte, 0, KwamiNftSize), kwamiNftDiscriminator)
	buffer = appendIdentity(buffer, k.Mint)
	buffer = appendIdentity(buffer, k.Owner)
	buffer = appendFingerprint(buffer, k.DnaHash)
	buffer = appendInt64(buffer, k.MintedAt)
	buffer = appendInt64(buffer, k.UpdatedAt)
	buffer = appendString(buffer, k.MetadataUri)
	buffer = appendUint8(buffer, k.Bump)
	return pad(buffer, KwamiNftSize)
}

// UnpackKwamiNft - decode a packed asset record
func UnpackKwamiNft(buffer []byte) (*KwamiNft, error) {
	u := newUnpacker(buffer, kwamiNftDiscriminator)
	k := &KwamiNft{
		Mint:        u.identity(),
		Owner:       u.identity(),
		DnaHash:     u.fingerprint(),
		MintedAt:    u.int64(),
		UpdatedAt:   u.int64(),
		MetadataUri: u.string(MaxUriLength),
		Bump:        u.uint8(),
	}
	if nil != u.err {
		return nil, u.err
	}
	return k, nil
}

// Pack - fixed size layout
func (t *TokenAuthority) Pack() (Packed, error) {
	buffer := appendDiscriminator(make([]byte, 0, TokenAuthoritySize), tokenAuthorityDiscriminator)
	buffer = appendIdentity(buffer, t.Authority)
	buffer = appendIdentity(buffer, t.Mint)
	buffer = appendUint64(buffer, t.TotalMinted)
	buffer = appendUint64(buffer, t.TotalBurned)
	buffer = appendUint64(buffer, t.BasePriceUsdCents)
	buffer = appendUint8(buffer, t.Bump)
	return pad(buffer, TokenAuthoritySize)
}

// UnpackTokenAuthority - decode a packed token authority
func UnpackTokenAuthority(buffer []byte) (*TokenAuthority, error) {
	u := newUnpacker(buffer, tokenAuthorityDiscriminator)
	t := &TokenAuthority{
		Authority:         u.identity(),
		Mint:              u.identity(),
		TotalMinted:       u.uint64(),
		TotalBurned:       u.uint64(),
		BasePriceUsdCents: u.uint64(),
		Bump:              u.uint8(),
	}
	if nil != u.err {
		return nil, u.err
	}
	return t, nil
}

// Circulating - minted less burned
func (t *TokenAuthority) Circulating() (uint64, error) {
	if t.TotalBurned > t.TotalMinted {
		return 0, fault.MathOverflow
	}
	return t.TotalMinted - t.TotalBurned, nil
}

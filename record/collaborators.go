// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/kwami-ai/kwamid/account"
)

// Mint - a token mint as kept by the token program
type Mint struct {
	Authority account.Identity `json:"authority"`
	Decimals  uint8            `json:"decimals"`
	Supply    uint64           `json:"supply"`
}

// Metadata - display data of a mint, written once
type Metadata struct {
	Mint                 account.Identity `json:"mint"`
	UpdateAuthority      account.Identity `json:"updateAuthority"`
	Name                 string           `json:"name"`
	Symbol               string           `json:"symbol"`
	Uri                  string           `json:"uri"`
	SellerFeeBasisPoints uint16           `json:"sellerFeeBasisPoints"`
	IsMutable            bool             `json:"isMutable"`
}

// Pack - variable length layout
func (m *Mint) Pack() (Packed, error) {
	buffer := appendDiscriminator(nil, mintDiscriminator)
	buffer = appendIdentity(buffer, m.Authority)
	buffer = appendUint8(buffer, m.Decimals)
	buffer = appendUint64(buffer, m.Supply)
	return Packed(buffer), nil
}

// UnpackMint - decode a packed mint
func UnpackMint(buffer []byte) (*Mint, error) {
	u := newUnpacker(buffer, mintDiscriminator)
	m := &Mint{
		Authority: u.identity(),
		Decimals:  u.uint8(),
		Supply:    u.uint64(),
	}
	if nil != u.err {
		return nil, u.err
	}
	return m, nil
}

// Pack - variable length layout
func (m *Metadata) Pack() (Packed, error) {
	buffer := appendDiscriminator(nil, metadataDiscriminator)
	buffer = appendIdentity(buffer, m.Mint)
	buffer = appendIdentity(buffer, m.UpdateAuthority)
	buffer = appendString(buffer, m.Name)
	buffer = appendString(buffer, m.Symbol)
	buffer = appendString(buffer, m.Uri)
	buffer = appendUint16(buffer, m.SellerFeeBasisPoints)
	buffer = appendBool(buffer, m.IsMutable)
	return Packed(buffer), nil
}

// UnpackMetadata - decode a packed metadata record
func UnpackMetadata(buffer []byte) (*Metadata, error) {
	u := newUnpacker(buffer, metadataDiscriminator)
	m := &Metadata{
		Mint:                 u.identity(),
		UpdateAuthority:      u.identity(),
		Name:                 u.string(MaxNameLength),
		Symbol:               u.string(MaxSymbolLength),
		Uri:                  u.string(MaxUriLength),
		SellerFeeBasisPoints: u.uint16(),
		IsMutable:            u.bool(),
	}
	if nil != u.err {
		return nil, u.err
	}
	return m, nil
}

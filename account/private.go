// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/kwami-ai/kwamid/fault"
)

const (
	taggedSeed = "SEED:"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key
func NewPrivateKey() (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromSeed - rebuild a key from its 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidPrivateKeyFile
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// ParsePrivateKey - read the tagged text form written by MarshalText
func ParsePrivateKey(text string) (*PrivateKey, error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, taggedSeed) {
		return nil, fault.InvalidPrivateKeyFile
	}
	seed, err := hex.DecodeString(s[len(taggedSeed):])
	if nil != err {
		return nil, fault.InvalidPrivateKeyFile
	}
	return PrivateKeyFromSeed(seed)
}

// Identity - the public half
func (privateKey *PrivateKey) Identity() Identity {
	identity := Identity{}
	copy(identity[:], privateKey.key.Public().(ed25519.PublicKey))
	return identity
}

// Sign - produce a signature that Identity.CheckSignature accepts
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.key, message))
}

// MarshalText - tagged hex of the seed, suitable for a key file
func (privateKey *PrivateKey) MarshalText() ([]byte, error) {
	return []byte(taggedSeed + hex.EncodeToString(privateKey.key.Seed()) + "\n"), nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
)

// Packed - packed account bytes
type Packed []byte

// Discriminator - account type prefix
type Discriminator [DiscriminatorLength]byte

// NewDiscriminator - first eight bytes of SHA3-256("account:" ++ name)
func NewDiscriminator(name string) Discriminator {
	d := Discriminator{}
	h := sha3.Sum256([]byte("account:" + name))
	copy(d[:], h[:])
	return d
}

func appendDiscriminator(buffer []byte, d Discriminator) []byte {
	return append(buffer, d[:]...)
}

func appendIdentity(buffer []byte, id account.Identity) []byte {
	return append(buffer, id[:]...)
}

func appendFingerprint(buffer []byte, fp Fingerprint) []byte {
	return append(buffer, fp[:]...)
}

func appendUint8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

func appendUint16(buffer []byte, value uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, value)
	return append(buffer, b...)
}

func appendUint32(buffer []byte, value uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, value)
	return append(buffer, b...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, value)
	return append(buffer, b...)
}

func appendInt64(buffer []byte, value int64) []byte {
	return appendUint64(buffer, uint64(value))
}

func appendString(buffer []byte, s string) []byte {
	buffer = appendUint32(buffer, uint32(len(s)))
	return append(buffer, s...)
}

func appendBool(buffer []byte, b bool) []byte {
	if b {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// pad to a fixed size, failing if the content does not fit
func pad(buffer []byte, size int) (Packed, error) {
	if len(buffer) > size {
		return nil, fault.RecordTooLong
	}
	result := make([]byte, size)
	copy(result, buffer)
	return Packed(result), nil
}

// sequential reader, the first failure sticks
type unpacker struct {
	buffer []byte
	n      int
	err    error
}

func newUnpacker(buffer []byte, d Discriminator) *unpacker {
	u := &unpacker{buffer: buffer}
	if len(buffer) < DiscriminatorLength {
		u.err = fault.RecordTruncated
		return u
	}
	for i := 0; i < DiscriminatorLength; i += 1 {
		if buffer[i] != d[i] {
			u.err = fault.InvalidDiscriminator
			return u
		}
	}
	u.n = DiscriminatorLength
	return u
}

func (u *unpacker) take(count int) []byte {
	if nil != u.err {
		return nil
	}
	if count < 0 || u.n+count > len(u.buffer) {
		u.err = fault.RecordTruncated
		return nil
	}
	b := u.buffer[u.n : u.n+count]
	u.n += count
	return b
}

func (u *unpacker) identity() account.Identity {
	id := account.Identity{}
	copy(id[:], u.take(account.IdentityLength))
	return id
}

func (u *unpacker) fingerprint() Fingerprint {
	fp := Fingerprint{}
	copy(fp[:], u.take(FingerprintLength))
	return fp
}

func (u *unpacker) uint8() uint8 {
	b := u.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

func (u *unpacker) uint16() uint16 {
	b := u.take(2)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (u *unpacker) uint32() uint32 {
	b := u.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (u *unpacker) uint64() uint64 {
	b := u.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (u *unpacker) int64() int64 {
	return int64(u.uint64())
}

func (u *unpacker) bool() bool {
	return 0 != u.uint8()
}

func (u *unpacker) string(limit int) string {
	length := u.uint32()
	if nil != u.err {
		return ""
	}
	if int64(length) > int64(limit) {
		u.err = fault.RecordTooLong
		return ""
	}
	return string(u.take(int(length)))
}

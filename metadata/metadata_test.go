// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/derivation"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/fixtures"
	"github.com/kwami-ai/kwamid/metadata"
	"github.com/kwami-ai/kwamid/program"
	"github.com/kwami-ai/kwamid/record"
	"github.com/kwami-ai/kwamid/storage"
	"github.com/kwami-ai/kwamid/token/mocks"
)

var assetMint = account.Identity{0x33}

func newContext(t *testing.T) *program.Context {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return program.NewContext(trx, time.Now(), nil)
}

func authoritySigner(t *testing.T) (account.Identity, derivation.Signer) {
	collectionMint := account.Identity{0x44}
	address, bump, err := derivation.FindAddress([][]byte{[]byte(record.CollectionAuthorityTag), collectionMint.Bytes()}, fixtures.CollectionProgram)
	assert.Nil(t, err, "find address")
	return address, derivation.NewSigner(fixtures.CollectionProgram, record.CollectionAuthorityTag, collectionMint, bump)
}

func TestCreate(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	address, signer := authoritySigner(t)
	tokens := mocks.NewMockHandle(ctl)
	tokens.EXPECT().Mint(gomock.Any(), assetMint).Return(&record.Mint{Authority: address}, nil).Times(2)

	md := metadata.New(tokens)
	ctx := newContext(t)
	defer ctx.Transaction().Abort()

	err := md.Create(ctx, signer, assetMint, "Kwami#1", "KWAMI", "https://kwami.io/1.json")
	assert.Nil(t, err, "create")

	m, err := md.Get(ctx, assetMint)
	assert.Nil(t, err, "get")
	assert.Equal(t, "Kwami#1", m.Name, "name")
	assert.Equal(t, address, m.UpdateAuthority, "update authority")
	assert.False(t, m.IsMutable, "immutable")
	assert.Equal(t, uint16(0), m.SellerFeeBasisPoints, "seller fee")

	err = md.Create(ctx, signer, assetMint, "Kwami#1", "KWAMI", "")
	assert.Equal(t, fault.AlreadyInitialized, err, "second create")
}

func TestCreateWrongSigner(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, signer := authoritySigner(t)
	tokens := mocks.NewMockHandle(ctl)
	tokens.EXPECT().Mint(gomock.Any(), assetMint).Return(&record.Mint{Authority: account.Identity{0x55}}, nil).Times(1)

	ctx := newContext(t)
	defer ctx.Transaction().Abort()

	err := metadata.New(tokens).Create(ctx, signer, assetMint, "Kwami#1", "KWAMI", "")
	assert.Equal(t, fault.InvalidDerivation, err, "wrong authority")
}

func TestCreateBounds(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, signer := authoritySigner(t)
	md := metadata.New(mocks.NewMockHandle(ctl))

	ctx := newContext(t)
	defer ctx.Transaction().Abort()

	assert.Equal(t, fault.NameTooLong, md.Create(ctx, signer, assetMint, strings.Repeat("n", 33), "", ""), "name")
	assert.Equal(t, fault.SymbolTooLong, md.Create(ctx, signer, assetMint, "", strings.Repeat("s", 11), ""), "symbol")
	assert.Equal(t, fault.UriTooLong, md.Create(ctx, signer, assetMint, "", "", strings.Repeat("u", 201)), "uri")
}

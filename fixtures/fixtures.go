// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known program identities for tests
var (
	CollectionProgram = account.Identity{0x4b, 0x57, 0x41, 0x4d, 0x49}
	LedgerProgram     = account.Identity{0x51, 0x57, 0x41, 0x4d, 0x49}
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestStorage - logger plus a fresh in-memory database
func SetupTestStorage(t *testing.T) {
	SetupTestLogger()
	err := storage.Initialise(storage.MemoryDatabase, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// TeardownTestStorage - close and remove everything SetupTestStorage made
func TeardownTestStorage() {
	storage.Finalise()
	TeardownTestLogger()
}

// NewKey - a fresh signing key, fails the test on error
func NewKey(t *testing.T) *account.PrivateKey {
	key, err := account.NewPrivateKey()
	if nil != err {
		t.Fatalf("new key error: %s", err)
	}
	return key
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Accounts     *PoolHandle `prefix:"A" database:"state"`
	Balances     *PoolHandle `prefix:"B" database:"state"`
	Instructions *PoolHandle `prefix:"I" database:"state"`
	Metadata     *PoolHandle `prefix:"D" database:"state"`
	Mints        *PoolHandle `prefix:"M" database:"state"`
	Logs         *PoolHandle `prefix:"L" database:"index"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentStateDBVersion = 0x100
	currentIndexDBVersion = 0x100
)

// holds the database handles
var poolData struct {
	sync.RWMutex
	log     *logger.L
	dbState *leveldb.DB
	dbIndex *leveldb.DB
}

// MemoryDatabase - database name that keeps everything in memory
const MemoryDatabase = ":memory:"

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.dbState {
		return fault.AlreadyInitialised
	}

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	poolData.log = logger.New("storage")

	stateDatabase := database + "-state.leveldb"
	indexDatabase := database + "-index.leveldb"

	db, stateVersion, err := getDB(stateDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbState = db

	db, indexVersion, err := getDB(indexDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbIndex = db

	err = checkVersion(poolData.dbState, "state", stateVersion, currentStateDBVersion, readOnly)
	if nil != err {
		return err
	}
	err = checkVersion(poolData.dbIndex, "index", indexVersion, currentIndexDBVersion, readOnly)
	if nil != err {
		return err
	}

	err = setupPools()
	if nil != err {
		return err
	}

	poolData.log.Infof("state: %q  index: %q  read only: %t", stateDatabase, indexDatabase, readOnly)

	ok = true // prevent db close
	return nil
}

// ensure no database downgrade and tag an empty database
func checkVersion(db *leveldb.DB, name string, version int, current int, readOnly bool) error {
	if version > current {
		poolData.log.Criticalf("%s database version: %d > current version: %d", name, version, current)
		return fmt.Errorf("%s database version: %d > current version: %d", name, version, current)
	}
	if 0 == version {
		if readOnly {
			return fmt.Errorf("%s database is empty", name)
		}
		return putVersion(db, current)
	}
	if version < current {
		poolData.log.Criticalf("%s database version: %d < current version: %d", name, version, current)
		return fmt.Errorf("%s database version: %d < current version: %d", name, version, current)
	}
	return nil
}

// bind each pool field to its prefix and database
func setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		if name, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s reuses prefix: %q of: %s", fieldInfo.Name, prefixTag, name)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		dbName := fieldInfo.Tag.Get("database")
		switch dbName {
		case "state", "index":
		default:
			return fmt.Errorf("pool: %v  has invalid database: %q", fieldInfo, dbName)
		}

		p := &PoolHandle{
			name:     fieldInfo.Name,
			prefix:   prefix,
			limit:    limit,
			database: dbName,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// select a database by its tag name
//
// must be called with poolData locked
func databaseFor(name string) *leveldb.DB {
	switch name {
	case "state":
		return poolData.dbState
	case "index":
		return poolData.dbIndex
	default:
		return nil
	}
}

func dbClose() {
	if nil != poolData.dbIndex {
		poolData.dbIndex.Close()
		poolData.dbIndex = nil
	}
	if nil != poolData.dbState {
		poolData.dbState.Close()
		poolData.dbState = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	var db *leveldb.DB
	var err error
	if strings.HasPrefix(name, MemoryDatabase) {
		db, err = leveldb.Open(ldb_storage.NewMemStorage(), opt)
	} else {
		db, err = leveldb.OpenFile(name, opt)
	}
	if nil != err {
		return nil, 0, err
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, 0, err
	}
	return db, version, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - start a fresh transaction over both databases
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.dbState || nil == poolData.dbIndex {
		return nil, fault.NotInitialised
	}

	c := newCache()
	access := map[string]Access{
		"state": newDA(poolData.dbState, new(leveldb.Batch), c),
		"index": newDA(poolData.dbIndex, new(leveldb.Batch), c),
	}
	trx := newTransaction(access)
	err := trx.Begin()
	if nil != err {
		return nil, err
	}
	return trx, nil
}

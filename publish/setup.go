// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed instruction events
//
// each event is sent as a multi-part ZeroMQ message:
//
//   [0] command  "committed"
//   [1] instruction id (32 bytes)
//   [2] instruction name
//   [3] log lines separated by newlines
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/background"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/messagebus"
	"github.com/kwami-ai/kwamid/zmqutil"
)

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc broadcaster

	publicKey []byte

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the broadcast sockets and start sending events
//
// an empty broadcast list leaves publishing disabled
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Warn("no broadcast addresses, events disabled")
		globalData.initialised = true
		return nil
	}

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}
	globalData.log.Tracef("public key: %x", publicKey)

	globalData.publicKey = publicKey

	err = zmqutil.StartAuthentication()
	if nil != err {
		globalData.log.Errorf("zmq authentication error: %s", err)
		return err
	}

	err = globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		return err
	}

	globalData.initialised = true

	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}
	globalData.background = background.Start(processes, messagebus.Bus.Events)

	return nil
}

// PublicKey - key subscribers need to connect
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.publicKey
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.background = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

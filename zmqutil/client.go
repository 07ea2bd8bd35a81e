// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/kwami-ai/kwamid/fault"
)

// NewSubscriber - CURVE client SUB socket connected to one publisher
//
// the client key pair is used for encryption only, the server accepts
// any client
func NewSubscriber(serverPublicKey []byte, privateKey []byte, publicKey []byte, address string, timeout time.Duration) (*zmq.Socket, error) {
	if publicLength != len(serverPublicKey) || publicLength != len(publicKey) {
		return nil, fault.InvalidPublicKeyFile
	}
	if privateLength != len(privateKey) {
		return nil, fault.InvalidPrivateKeyFile
	}

	connectTo, v6, err := BindAddress(address)
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	setup := []func() error{
		func() error { return socket.SetCurveServer(0) },
		func() error { return socket.SetCurvePublickey(string(publicKey)) },
		func() error { return socket.SetCurveSecretkey(string(privateKey)) },
		func() error { return socket.SetCurveServerkey(string(serverPublicKey)) },
		func() error { return socket.SetIpv6(v6) },
		func() error { return socket.SetLinger(0) },
		func() error { return socket.SetRcvtimeo(timeout) },
		func() error { return socket.SetSubscribe("") },
		func() error { return socket.Connect(connectTo) },
	}
	for _, f := range setup {
		err := f()
		if nil != err {
			socket.Close()
			return nil, err
		}
	}
	return socket, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/kwami-ai/kwamid/messagebus"
	"github.com/kwami-ai/kwamid/zmqutil"
)

const (
	broadcasterZapDomain = "publish"
)

// sender - the part of a socket a broadcast needs
type sender interface {
	Send(data string, flags zmq.Flag) (int, error)
	SendBytes(data []byte, flags zmq.Flag) (int, error)
}

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {
	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6
	return nil
}

// Run - forward queued events until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log
	queue := args.(*messagebus.Queue).Chan()

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  frames: %d", item.Command, len(item.Parameters))
			if nil != brdc.socket4 {
				brdc.send(brdc.socket4, &item)
			}
			if nil != brdc.socket6 {
				brdc.send(brdc.socket6, &item)
			}
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// one multi-part message, a slow subscriber loses events rather
// than stalling the publisher
func (brdc *broadcaster) send(socket sender, item *messagebus.Message) {
	err := sendMessage(socket, item)
	if nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
	}
}

func sendMessage(socket sender, item *messagebus.Message) error {
	flags := zmq.DONTWAIT
	if 0 != len(item.Parameters) {
		flags |= zmq.SNDMORE
	}
	_, err := socket.Send(item.Command, flags)
	if nil != err {
		return err
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		_, err = socket.SendBytes(p, flags)
		if nil != err {
			return err
		}
	}
	return nil
}

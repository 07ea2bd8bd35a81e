// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"syscall"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/kwami-ai/kwamid/instruction"
	"github.com/kwami-ai/kwamid/zmqutil"
)

const watchTimeout = 5 * time.Second

// Event - one commit notification
type Event struct {
	Command     string         `json:"command"`
	Id          instruction.Id `json:"id"`
	Instruction string         `json:"instruction"`
	Logs        []string       `json:"logs"`
}

func runWatch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	publisher := strings.TrimSpace(c.String("publisher"))
	if "" == publisher {
		return fmt.Errorf("missing --publisher")
	}
	count := c.Int("count")

	// the server key is read from the node itself
	client, err := connect(m)
	if nil != err {
		return err
	}
	info, err := client.Info()
	client.Close()
	if nil != err {
		return err
	}
	if "" == info.PublicKey {
		return fmt.Errorf("node at: %s is not publishing events", m.connect)
	}
	serverPublicKey, err := hex.DecodeString(info.PublicKey)
	if nil != err {
		return err
	}

	// ephemeral client keys
	public, private, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	socket, err := zmqutil.NewSubscriber(serverPublicKey, []byte(zmq.Z85decode(private)), []byte(zmq.Z85decode(public)), publisher, watchTimeout)
	if nil != err {
		return err
	}
	defer socket.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "subscribed to: %s\n", publisher)
	}

	for received := 0; 0 == count || received < count; {
		frames, err := socket.RecvMessageBytes(0)
		if nil != err {
			if zmq.AsErrno(err) == zmq.Errno(syscall.EAGAIN) {
				continue
			}
			return err
		}
		event, err := decodeEvent(frames)
		if nil != err {
			fmt.Fprintf(m.e, "discarding event: %s\n", err)
			continue
		}
		received += 1
		printJson(m.w, event)
	}
	return nil
}

func decodeEvent(frames [][]byte) (*Event, error) {
	if 0 == len(frames) {
		return nil, fmt.Errorf("empty message")
	}
	event := &Event{
		Command: string(frames[0]),
	}
	if instruction.EventCommitted != event.Command {
		return event, nil
	}
	if 4 != len(frames) {
		return nil, fmt.Errorf("%s: expected 4 frames, got: %d", event.Command, len(frames))
	}
	if instruction.IdLength != len(frames[1]) {
		return nil, fmt.Errorf("%s: invalid id length: %d", event.Command, len(frames[1]))
	}
	copy(event.Id[:], frames[1])
	event.Instruction = string(frames[2])
	if 0 != len(frames[3]) {
		event.Logs = strings.Split(string(frames[3]), "\n")
	}
	return event, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/rpc/certificate"
)

// Client - a JSON-RPC connection to kwamid
type Client struct {
	conn    io.Closer
	client  *rpc.Client
	verbose bool
	handle  io.Writer
}

// NewClient - connect over TLS
//
// the daemon certificate is self signed so an optional hex SHA3-256
// fingerprint pins it instead of chain verification
func NewClient(connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != fingerprint {
		expected, err := hex.DecodeString(fingerprint)
		if nil != err || 32 != len(expected) {
			return nil, fault.InvalidFingerprint
		}
		tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) {
				return fault.InvalidFingerprint
			}
			actual := certificate.Fingerprint(rawCerts[0])
			if !bytes.Equal(expected, actual[:]) {
				return fmt.Errorf("certificate fingerprint: %x does not match: %s", actual, fingerprint)
			}
			return nil
		}
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn io.ReadWriteCloser, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the kwamid connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		fmt.Fprintf(c.handle, "%s request: %+v\n", method, arguments)
	}
	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}
	if c.verbose {
		fmt.Fprintf(c.handle, "%s reply: %+v\n", method, reply)
	}
	return nil
}

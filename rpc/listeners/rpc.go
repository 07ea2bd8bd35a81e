// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/counter"
	"github.com/kwami-ai/kwamid/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
	minBandwidth       = 1000000 // 1Mbps
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Bandwidth          float64  `gluamapper:"bandwidth" json:"bandwidth"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	networks       []string
	addresses      []string
	listeners      []net.Listener
}

// NewRPC - validate the configuration and prepare a TLS JSON-RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if configuration.Bandwidth <= minBandwidth {
		log.Errorf("invalid %s bandwidth: %f bps < 1Mbps", logName, configuration.Bandwidth)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	networks, addresses, err := parseListenAddresses(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", logName, err)
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		networks:       networks,
		addresses:      addresses,
	}, nil
}

// Serve - start one accept loop per listen address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, address := range r.addresses {
		r.log.Infof("starting RPC server: %s", address)
		l, err := tls.Listen(r.networks[i], address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)
		go r.accept(l)
	}
	return nil
}

// Close - stop accepting, open connections finish on their own
func (r *rpcListener) Close() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("accept terminated: %s", err)
			break
		}
		if r.count.Increment() > r.maxConnections {
			r.count.Decrement()
			r.log.Warnf("connection limit reached, rejected: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.Decrement()
		}()
	}
}

// "*:P" listens on all interfaces, "[v6]:P" on tcp6, otherwise tcp4
func parseListenAddresses(listen []string) ([]string, []string, error) {
	networks := make([]string, len(listen))
	addresses := make([]string, len(listen))
	for i, address := range listen {
		host, port, err := net.SplitHostPort(address)
		if nil != err {
			return nil, nil, fault.InvalidIpAddress
		}

		switch {
		case "*" == host:
			networks[i] = "tcp"
			addresses[i] = net.JoinHostPort("::", port)
			continue
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if nil == net.ParseIP(host) {
			return nil, nil, fault.InvalidIpAddress
		}
		addresses[i] = address
	}
	return networks, addresses, nil
}

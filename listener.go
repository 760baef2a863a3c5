//
//
// Tencent is pleased to support the open source community by making tRPC available.
//
// Copyright (C) 2023 THL A29 Limited, a Tencent company.
// All rights reserved.
//
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the  Apache 2.0 License,
// A copy of the Apache 2.0 License is included in this file.
//
//

package keepalive

import (
	"fmt"
	"net"

	goreuseport "github.com/kavu/go_reuseport"
	"github.com/pkg/errors"
	"trpc.group/trpc-go/keepalive/log"
	"trpc.group/trpc-go/keepalive/metrics"
)

// Listen announces on the local network address and returns a listener
// whose accepted connections have the keepalive parameters applied.
// Valid networks are "tcp", "tcp4" and "tcp6". With WithReusePort the
// listening socket is bound with SO_REUSEPORT.
func Listen(network, address string, opt ...Option) (net.Listener, error) {
	switch network {
	case "tcp", "tcp4", "tcp6":
	default:
		return nil, fmt.Errorf("Listen: unknown network %s", network)
	}
	var opts options
	opts.setDefault()
	for _, o := range opt {
		o.f(&opts)
	}
	listen := net.Listen
	if opts.reuseport {
		listen = goreuseport.Listen
	}
	ln, err := listen(network, address)
	if err != nil {
		return nil, errors.Wrapf(err, "listen network %s, address %s", network, address)
	}
	return &listener{Listener: ln, opts: opts}, nil
}

// WrapListener wraps an existing TCP listener so that every accepted
// connection has the keepalive parameters applied. The wrapped
// listener keeps ownership of the underlying socket.
func WrapListener(ln net.Listener, opt ...Option) net.Listener {
	var opts options
	opts.setDefault()
	for _, o := range opt {
		o.f(&opts)
	}
	return &listener{Listener: ln, opts: opts}
}

type listener struct {
	net.Listener
	opts options
}

// Accept waits for the next connection and configures keepalive on it.
// By default a connection whose configuration fails is still
// delivered, with the failure counted and logged; with WithStrict it
// is closed and Accept moves on to the next connection.
func (l *listener) Accept() (net.Conn, error) {
	for {
		conn, err := l.Listener.Accept()
		if err != nil {
			return nil, err
		}
		metrics.Add(metrics.ConnsAccepted, 1)
		if err := Set(conn, l.opts.cfg); err != nil {
			log.Warnf("keepalive on connection from %v: %v", conn.RemoteAddr(), err)
			if l.opts.strict {
				conn.Close()
				continue
			}
		}
		return conn, nil
	}
}

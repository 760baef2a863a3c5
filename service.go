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
	"net"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"trpc.group/trpc-go/keepalive/log"
)

// Handler processes an accepted connection. Ownership of the
// connection passes to the handler, which is responsible for closing
// it.
type Handler func(conn net.Conn)

var (
	maxRoutines = 0 // meaning INT32_MAX.
	pool, _     = ants.NewPool(maxRoutines)
)

// Serve accepts connections from ln, configures keepalive on each, and
// dispatches handler on a shared goroutine pool. It blocks until
// Accept fails, typically because ln was closed, and returns that
// error. Serve does not close ln.
//
// Options take effect when ln did not come from Listen or
// WrapListener; a listener created by those keeps its own settings.
func Serve(ln net.Listener, handler Handler, opt ...Option) error {
	if ln == nil {
		return errors.New("listener is nil")
	}
	if handler == nil {
		return errors.New("handler is nil")
	}
	kln, ok := ln.(*listener)
	if !ok {
		kln, _ = WrapListener(ln, opt...).(*listener)
	}
	for {
		conn, err := kln.Accept()
		if err != nil {
			return errors.Wrap(err, "accept")
		}
		c := conn
		if err := pool.Submit(func() { handler(c) }); err != nil {
			log.Errorf("submit handler for connection from %v: %v", c.RemoteAddr(), err)
			c.Close()
		}
	}
}

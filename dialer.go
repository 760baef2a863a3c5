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
	"time"

	"github.com/pkg/errors"
	"trpc.group/trpc-go/keepalive/metrics"
)

// DialTCP connects to the address on the named network within the
// timeout and applies the keepalive parameters to the new connection
// before handing it out. Valid networks are "tcp", "tcp4" (IPv4-only)
// and "tcp6" (IPv6-only).
//
// If keepalive configuration fails, the connection is closed and the
// error returned, since ownership has not yet passed to the caller.
func DialTCP(network, address string, timeout time.Duration, opt ...Option) (net.Conn, error) {
	switch network {
	case "tcp", "tcp4", "tcp6":
	default:
		return nil, fmt.Errorf("DialTCP: unknown network %s", network)
	}
	var opts options
	opts.setDefault()
	for _, o := range opt {
		o.f(&opts)
	}
	c, err := net.DialTimeout(network, address, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "dial network %s, address %s with timeout %+v", network, address, timeout)
	}
	if err := Set(c, opts.cfg); err != nil {
		c.Close()
		return nil, errors.Wrap(err, "configure dialed connection")
	}
	metrics.Add(metrics.ConnsDialed, 1)
	return c, nil
}

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

package netutil_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/keepalive/internal/netutil"
)

func newSocketFD(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)
	defer ln.Close()
	c := make(chan struct{})
	go func() {
		client, err := net.Dial("tcp", ln.Addr().String())
		require.Nil(t, err)
		<-c
		client.Close()
	}()
	conn, err := ln.Accept()
	require.Nil(t, err)
	t.Cleanup(func() {
		c <- struct{}{}
		conn.Close()
	})
	fd, err := netutil.GetFD(conn)
	require.Nil(t, err)
	return fd
}

func TestSetKeepAliveOptions(t *testing.T) {
	fd := newSocketFD(t)

	require.Nil(t, netutil.SetKeepAlive(fd, true))
	on, err := netutil.KeepAlive(fd)
	require.Nil(t, err)
	require.True(t, on)

	require.Nil(t, netutil.SetKeepAliveIdle(fd, 60))
	idle, err := netutil.KeepAliveIdle(fd)
	require.Nil(t, err)
	require.Equal(t, 60, idle)

	require.Nil(t, netutil.SetKeepAliveInterval(fd, 10))
	interval, err := netutil.KeepAliveInterval(fd)
	require.Nil(t, err)
	require.Equal(t, 10, interval)

	require.Nil(t, netutil.SetKeepAliveCount(fd, 5))
	count, err := netutil.KeepAliveCount(fd)
	require.Nil(t, err)
	require.Equal(t, 5, count)

	require.Nil(t, netutil.SetKeepAlive(fd, false))
	on, err = netutil.KeepAlive(fd)
	require.Nil(t, err)
	require.False(t, on)
}

func TestSetKeepAliveInvalidValue(t *testing.T) {
	fd := newSocketFD(t)
	require.NotNil(t, netutil.SetKeepAliveIdle(fd, -1))
	require.NotNil(t, netutil.SetKeepAliveInterval(fd, -1))
	require.NotNil(t, netutil.SetKeepAliveCount(fd, -1))
}

func TestSetKeepAliveNotSocket(t *testing.T) {
	// fd 0 is stdin, not a socket.
	require.NotNil(t, netutil.SetKeepAlive(0, true))
	_, err := netutil.KeepAliveIdle(0)
	require.NotNil(t, err)
}

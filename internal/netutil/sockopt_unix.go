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

//go:build linux || freebsd || dragonfly || netbsd || darwin
// +build linux freebsd dragonfly netbsd darwin

package netutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// SetKeepAlive turns keepalive probing on or off for fd.
func SetKeepAlive(fd int, enable bool) error {
	v := 0
	if enable {
		v = 1
	}
	return setsockopt(unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_KEEPALIVE, v))
}

// SetKeepAliveIdle sets the idle time (in seconds) before the first
// keepalive probe is sent on fd.
func SetKeepAliveIdle(fd, secs int) error {
	return setsockopt(unix.SetsockoptInt(fd, unix.IPPROTO_TCP, optKeepAliveIdle, secs))
}

// SetKeepAliveInterval sets the time (in seconds) between individual
// keepalive probes on fd.
func SetKeepAliveInterval(fd, secs int) error {
	return setsockopt(unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPINTVL, secs))
}

// SetKeepAliveCount sets the number of unacknowledged probes after
// which the kernel gives up on the connection behind fd.
func SetKeepAliveCount(fd, n int) error {
	return setsockopt(unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPCNT, n))
}

// KeepAlive reports whether keepalive probing is enabled on fd.
func KeepAlive(fd int) (bool, error) {
	v, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_KEEPALIVE)
	if err != nil {
		return false, os.NewSyscallError("getsockopt", err)
	}
	return v != 0, nil
}

// KeepAliveIdle returns the idle time (in seconds) before the first
// probe on fd.
func KeepAliveIdle(fd int) (int, error) {
	return getsockopt(unix.GetsockoptInt(fd, unix.IPPROTO_TCP, optKeepAliveIdle))
}

// KeepAliveInterval returns the time (in seconds) between probes on fd.
func KeepAliveInterval(fd int) (int, error) {
	return getsockopt(unix.GetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPINTVL))
}

// KeepAliveCount returns the probe count tolerated on fd before the
// connection is declared dead.
func KeepAliveCount(fd int) (int, error) {
	return getsockopt(unix.GetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_KEEPCNT))
}

func setsockopt(err error) error {
	return os.NewSyscallError("setsockopt", err)
}

func getsockopt(v int, err error) (int, error) {
	return v, os.NewSyscallError("getsockopt", err)
}

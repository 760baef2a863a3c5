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

// Package keepalive configures TCP keepalive probing on established
// connections. It only asks the kernel to apply the given parameters;
// probe timing and retransmission stay entirely inside the kernel's
// TCP implementation.
package keepalive

import (
	"net"
	"time"

	"github.com/pkg/errors"
	"trpc.group/trpc-go/keepalive/internal/netutil"
	"trpc.group/trpc-go/keepalive/metrics"
)

// Default parameters used by the dial/listen/serve helpers when no
// option overrides them.
const (
	// DefaultIdle is how long a connection stays quiet before the
	// first probe is sent.
	DefaultIdle = 15 * time.Second
	// DefaultInterval is the gap between successive probes while the
	// peer stays silent.
	DefaultInterval = 5 * time.Second
	// DefaultCount is how many unacknowledged probes are tolerated
	// before the kernel declares the connection dead.
	DefaultCount = 8
)

// Config holds the four kernel-level keepalive parameters.
type Config struct {
	// Enable turns keepalive probing on or off.
	Enable bool
	// Idle is the inactivity period before the first probe.
	Idle time.Duration
	// Interval is the period between probes after the first.
	Interval time.Duration
	// Count is the number of unacknowledged probes after which the
	// connection is considered dead.
	Count int
}

// DefaultConfig returns a Config with probing enabled and the package
// defaults for the timing parameters.
func DefaultConfig() Config {
	return Config{
		Enable:   true,
		Idle:     DefaultIdle,
		Interval: DefaultInterval,
		Count:    DefaultCount,
	}
}

// Set applies cfg to conn. The four options are applied in a fixed
// order: the SO_KEEPALIVE toggle, then idle time, probe interval and
// probe count. Set stops at the first option the kernel rejects and
// reports it as an *OpError; options applied before the failing one
// are not reverted.
//
// conn is borrowed. Set never closes it, and the caller keeps
// ownership of its lifetime. conn must be an established stream
// connection, typically a *net.TCPConn. Concurrent Set calls on the
// same connection may interleave; callers that need the four options
// applied atomically must serialize access themselves.
func Set(conn net.Conn, cfg Config) error {
	fd, err := netutil.GetFD(conn)
	if err != nil {
		return errors.Wrap(err, "keepalive: get raw connection")
	}
	return SetFD(fd, cfg)
}

// SetFD is Set for a raw socket file descriptor. The descriptor is
// borrowed and must stay valid for the duration of the call.
func SetFD(fd int, cfg Config) error {
	metrics.Add(metrics.Configures, 1)
	if err := netutil.SetKeepAlive(fd, cfg.Enable); err != nil {
		metrics.Add(metrics.ToggleFails, 1)
		return &OpError{Step: StepToggle, Err: err}
	}
	if err := netutil.SetKeepAliveIdle(fd, seconds(cfg.Idle)); err != nil {
		metrics.Add(metrics.IdleFails, 1)
		return &OpError{Step: StepIdle, Err: err}
	}
	if err := netutil.SetKeepAliveInterval(fd, seconds(cfg.Interval)); err != nil {
		metrics.Add(metrics.IntervalFails, 1)
		return &OpError{Step: StepInterval, Err: err}
	}
	if err := netutil.SetKeepAliveCount(fd, cfg.Count); err != nil {
		metrics.Add(metrics.CountFails, 1)
		return &OpError{Step: StepCount, Err: err}
	}
	return nil
}

// Apply is the boolean form of Set: true means all four options were
// applied, false means the first rejected option stopped the sequence.
// Use Set to learn which option failed and why.
func Apply(conn net.Conn, cfg Config) bool {
	return Set(conn, cfg) == nil
}

// Get reads the current keepalive settings of conn back from the
// kernel. Idle and Interval are reported at second granularity.
func Get(conn net.Conn) (Config, error) {
	fd, err := netutil.GetFD(conn)
	if err != nil {
		return Config{}, errors.Wrap(err, "keepalive: get raw connection")
	}
	return GetFD(fd)
}

// GetFD is Get for a raw socket file descriptor.
func GetFD(fd int) (Config, error) {
	var cfg Config
	var err error
	if cfg.Enable, err = netutil.KeepAlive(fd); err != nil {
		return Config{}, &OpError{Step: StepToggle, Err: err}
	}
	idle, err := netutil.KeepAliveIdle(fd)
	if err != nil {
		return Config{}, &OpError{Step: StepIdle, Err: err}
	}
	cfg.Idle = time.Duration(idle) * time.Second
	interval, err := netutil.KeepAliveInterval(fd)
	if err != nil {
		return Config{}, &OpError{Step: StepInterval, Err: err}
	}
	cfg.Interval = time.Duration(interval) * time.Second
	if cfg.Count, err = netutil.KeepAliveCount(fd); err != nil {
		return Config{}, &OpError{Step: StepCount, Err: err}
	}
	return cfg, nil
}

// Disable turns keepalive probing off on conn, leaving the timing
// parameters untouched.
func Disable(conn net.Conn) error {
	fd, err := netutil.GetFD(conn)
	if err != nil {
		return errors.Wrap(err, "keepalive: get raw connection")
	}
	metrics.Add(metrics.Configures, 1)
	if err := netutil.SetKeepAlive(fd, false); err != nil {
		metrics.Add(metrics.ToggleFails, 1)
		return &OpError{Step: StepToggle, Err: err}
	}
	return nil
}

// seconds rounds d up to the next whole second, the unit the kernel
// expects for keepalive options. Negative durations are passed through
// so the kernel can reject them.
func seconds(d time.Duration) int {
	if d > 0 {
		d += time.Second - time.Nanosecond
	}
	return int(d / time.Second)
}

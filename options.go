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

import "time"

// Option customizes the dial, listen and serve helpers.
type Option struct {
	f func(*options)
}

type options struct {
	cfg       Config
	reuseport bool
	strict    bool
}

func (o *options) setDefault() {
	o.cfg = DefaultConfig()
}

// WithConfig replaces the whole keepalive configuration.
func WithConfig(cfg Config) Option {
	return Option{func(op *options) {
		op.cfg = cfg
	}}
}

// WithIdle sets the inactivity period before the first probe.
func WithIdle(d time.Duration) Option {
	return Option{func(op *options) {
		op.cfg.Idle = d
	}}
}

// WithInterval sets the period between probes after the first.
func WithInterval(d time.Duration) Option {
	return Option{func(op *options) {
		op.cfg.Interval = d
	}}
}

// WithCount sets the number of unacknowledged probes tolerated before
// the connection is declared dead.
func WithCount(n int) Option {
	return Option{func(op *options) {
		op.cfg.Count = n
	}}
}

// WithDisabled turns keepalive probing off on new connections. The
// timing parameters are still applied, so probing can be re-enabled
// later without reconfiguring them.
func WithDisabled() Option {
	return Option{func(op *options) {
		op.cfg.Enable = false
	}}
}

// WithReusePort makes Listen bind with SO_REUSEPORT, so several
// processes can share the listening address.
func WithReusePort() Option {
	return Option{func(op *options) {
		op.reuseport = true
	}}
}

// WithStrict makes Accept close connections whose keepalive
// configuration fails instead of delivering them unconfigured.
func WithStrict() Option {
	return Option{func(op *options) {
		op.strict = true
	}}
}

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

// Package metrics counts keepalive configuration attempts and their
// failures, broken down by the socket option that was rejected.
package metrics

import (
	"time"

	"go.uber.org/atomic"
	"trpc.group/trpc-go/keepalive/log"
)

// All metrics definitions.
const (
	// Configures counts configuration attempts, successful or not.
	Configures = iota
	// ToggleFails counts SO_KEEPALIVE toggles rejected by the kernel.
	ToggleFails
	// IdleFails counts rejected idle time settings.
	IdleFails
	// IntervalFails counts rejected probe interval settings.
	IntervalFails
	// CountFails counts rejected probe count settings.
	CountFails
	// ConnsAccepted counts connections accepted through a wrapped listener.
	ConnsAccepted
	// ConnsDialed counts connections created by DialTCP.
	ConnsDialed

	// Keep it last.

	Max
)

var (
	metrics [Max]atomic.Uint64
)

// Add metrics counter.
func Add(name int, delta uint64) {
	if name >= Max {
		return
	}
	metrics[name].Add(delta)
}

// Get one metric counter.
func Get(name int) uint64 {
	if name >= Max {
		return 0
	}
	return metrics[name].Load()
}

// GetAll get all metrics.
func GetAll() [Max]uint64 {
	var m [Max]uint64
	for i := range metrics {
		m[i] = metrics[i].Load()
	}
	return m
}

// ShowMetricsOfPeriod shows metric info of duration d from now on.
// It will block d duration, and then prints metrics info.
func ShowMetricsOfPeriod(d time.Duration) {
	old := GetAll()
	<-time.After(d)
	cur := GetAll()
	var m [Max]uint64
	for i := range metrics {
		m[i] = cur[i] - old[i]
	}
	showAll(m)
}

// ShowMetrics shows metric info in console.
func ShowMetrics() {
	showAll(GetAll())
}

func showAll(m [Max]uint64) {
	log.Debug("######### keepalive metrics (", time.Now().Format("2006-01-02 15:04:05"), ") ###########")
	log.Debugf("%-59s: %d", "# number of configuration attempts", m[Configures])
	log.Debugf("%-59s: %d", "# number of rejected keepalive toggles", m[ToggleFails])
	log.Debugf("%-59s: %d", "# number of rejected idle time settings", m[IdleFails])
	log.Debugf("%-59s: %d", "# number of rejected probe interval settings", m[IntervalFails])
	log.Debugf("%-59s: %d", "# number of rejected probe count settings", m[CountFails])
	log.Debugf("%-59s: %d", "# number of connections accepted", m[ConnsAccepted])
	log.Debugf("%-59s: %d", "# number of connections dialed", m[ConnsDialed])
}

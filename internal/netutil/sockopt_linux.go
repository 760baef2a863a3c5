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

//go:build linux || freebsd || dragonfly || netbsd
// +build linux freebsd dragonfly netbsd

package netutil

import "golang.org/x/sys/unix"

// optKeepAliveIdle controls the time the connection needs to remain
// idle before TCP starts sending keepalive probes.
const optKeepAliveIdle = unix.TCP_KEEPIDLE

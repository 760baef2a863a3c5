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

package keepalive_test

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/keepalive"
)

func TestOpError(t *testing.T) {
	err := &keepalive.OpError{
		Step: keepalive.StepIdle,
		Err:  os.NewSyscallError("setsockopt", syscall.EINVAL),
	}
	require.Contains(t, err.Error(), "keepalive idle time")
	require.ErrorIs(t, err, syscall.EINVAL)

	var opErr *keepalive.OpError
	require.ErrorAs(t, error(err), &opErr)
	require.Equal(t, keepalive.StepIdle, opErr.Step)
}

func TestStepString(t *testing.T) {
	require.Equal(t, "keepalive toggle", keepalive.StepToggle.String())
	require.Equal(t, "keepalive idle time", keepalive.StepIdle.String())
	require.Equal(t, "keepalive probe interval", keepalive.StepInterval.String())
	require.Equal(t, "keepalive probe count", keepalive.StepCount.String())
	require.Contains(t, keepalive.Step(0).String(), "unknown")
}

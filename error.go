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

import "fmt"

// Step identifies the keepalive option a configuration attempt was
// applying when the kernel rejected it.
type Step int

// Configuration steps, in the order they are applied.
const (
	StepToggle Step = iota + 1
	StepIdle
	StepInterval
	StepCount
)

// String returns the socket option the step stands for.
func (s Step) String() string {
	switch s {
	case StepToggle:
		return "keepalive toggle"
	case StepIdle:
		return "keepalive idle time"
	case StepInterval:
		return "keepalive probe interval"
	case StepCount:
		return "keepalive probe count"
	default:
		return fmt.Sprintf("unknown step (%d)", int(s))
	}
}

// OpError reports the first keepalive option the kernel rejected.
// Options applied before Step succeeded and stay applied; options
// after it were never attempted.
type OpError struct {
	// Step is the option that failed.
	Step Step
	// Err is the error reported by the platform.
	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("keepalive: set %s: %v", e.Step, e.Err)
}

// Unwrap returns the platform error, so that errors.Is can match the
// underlying errno.
func (e *OpError) Unwrap() error {
	return e.Err
}

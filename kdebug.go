// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdebug

import "runtime"

// Debug is the single per-kernel instance of the self-verification and
// trace core. It is constructed once before the scheduler starts and
// lives until power-off; it is never resized, reallocated or destroyed.
//
// All mutation goes through the methods in this package. External code
// must not touch the fields directly.
type Debug struct {
	port Port
	halt HaltFunc
	mask Mask

	// Trace ring buffer. buf is nil when tracing is compiled out or the
	// mask is MaskNone.
	buf    []Record
	cursor int

	// State checker.
	isrDepth  int
	lockCnt   int
	lockOwner ThreadID
}

// New builds the core from its configuration. It is the only allocation
// point in the package; everything after it is allocation free.
func New(cfg Config) *Debug {
	if cfg.Port == nil {
		panic("kdebug: Config.Port is required")
	}
	d := &Debug{
		port: cfg.Port,
		halt: cfg.Halt,
		mask: cfg.Mask,
	}
	if d.halt == nil {
		d.halt = func(reason string) {
			panic("kdebug: system halted: " + reason)
		}
	}
	capacity := cfg.TraceCapacity
	if capacity <= 0 {
		capacity = DefaultTraceCapacity
	}
	if traceEnabled && cfg.Mask != MaskNone {
		d.buf = make([]Record, capacity)
	}
	return d
}

// callerName names the function skip+1 frames up the stack. It stands in
// for the enclosing function identity the halt handler receives, so a
// violation reports the offending call site rather than this package.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

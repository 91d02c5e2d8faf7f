// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdebug

// Mask selects which event classes the recorder stores. It is fixed at
// initialization; there is no way to change it afterwards.
type Mask uint8

const (
	MaskNone   Mask = 0
	MaskSwitch Mask = 1 << 0
	MaskISR    Mask = 1 << 1
	MaskAll         = MaskSwitch | MaskISR
)

// DefaultTraceCapacity is the trace buffer size used when Config leaves
// TraceCapacity at zero.
const DefaultTraceCapacity = 128

// Fill values for thread stack and control-record memory in debug builds.
// They are only defined here; filling and inspection are the business of
// external tools. ThreadFillValue is 0xFF so uninitialized control-record
// fields stand out when inspecting memory with a debugger.
const (
	StackFillValue  byte = 0x55
	ThreadFillValue byte = 0xFF
)

// HaltFunc is the fatal-halt capability supplied by the integrator. It
// receives the name of the function where the violation was detected.
// What a halt does (reset vector, breakpoint trap, LED pattern) is the
// handler's decision; this package's contract ends at requesting it.
type HaltFunc func(reason string)

// Config is the build-time configuration surface, consumed exactly once
// by New and immutable afterwards.
type Config struct {
	// Port is the injected port capability. Required.
	Port Port
	// Halt is the fatal-halt handler. Defaults to a panic, which is only
	// suitable for host-side testing.
	Halt HaltFunc
	// Mask selects the traced event classes. MaskNone disables tracing;
	// no buffer is allocated in that case.
	Mask Mask
	// TraceCapacity is the trace buffer entry count.
	// Zero means DefaultTraceCapacity.
	TraceCapacity int
}

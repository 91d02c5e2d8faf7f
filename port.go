// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdebug

// IRQStatus is the hardware-observable interrupt state as reported by the
// port layer.
type IRQStatus uint8

const (
	// IRQEnabled means interrupts are fully enabled.
	IRQEnabled IRQStatus = iota
	// IRQSuspended means interrupts are masked up to the kernel priority
	// boundary but still maskable.
	IRQSuspended
	// IRQDisabled means interrupts are fully disabled.
	IRQDisabled
)

func (s IRQStatus) String() string {
	switch s {
	case IRQEnabled:
		return "enabled"
	case IRQSuspended:
		return "suspended"
	case IRQDisabled:
		return "disabled"
	default:
		return "invalid"
	}
}

// Port is the capability the port/interrupt layer injects once at kernel
// start. Every method must be callable from any context, including nested
// interrupt context, and must complete in bounded time.
type Port interface {
	// Now samples the coarse system tick counter.
	Now() Ticks
	// CycleStamp samples the cycle-accurate counter, or returns 0 on
	// hardware without one. The value is truncated to FineStampBits when
	// recorded.
	CycleStamp() uint32
	// IRQStatus reports the current hardware interrupt state.
	IRQStatus() IRQStatus
	// DisableInterrupts disables interrupts and returns the previous
	// status for RestoreInterrupts.
	DisableInterrupts() IRQStatus
	// RestoreInterrupts restores a status previously returned by
	// DisableInterrupts.
	RestoreInterrupts(IRQStatus)
}

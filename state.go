// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdebug

// MaxISRNesting is the deepest legal ISR nesting. No supported port
// exposes more than eight preemption priority levels, so a deeper nest
// always indicates runaway interrupt entry glue.
const MaxISRNesting = 8

// maxLockedISRNesting bounds how deep interrupts may nest while the
// kernel lock is held. Only the single I-class acquisition path may
// preempt a locked region, so the bound is one level.
const maxLockedISRNesting = 1

// EnterISR is called by the interrupt entry glue at every ISR entry. It
// raises a violation when the nesting bound is exceeded, or when an
// interrupt nests into a kernel-locked region beyond the one level the
// I-class acquisition path is allowed.
func (d *Debug) EnterISR() {
	if !stateCheckEnabled {
		return
	}
	if d.isrDepth >= MaxISRNesting {
		d.halt(callerName(1))
		return
	}
	if d.lockCnt > 0 && d.isrDepth >= maxLockedISRNesting {
		d.halt(callerName(1))
		return
	}
	d.isrDepth++
}

// LeaveISR is the matching exit notification. An unbalanced call (depth
// already zero) is a programming error in the port layer and raises a
// violation without touching any state.
func (d *Debug) LeaveISR() {
	if !stateCheckEnabled {
		return
	}
	if d.isrDepth == 0 {
		d.halt(callerName(1))
		return
	}
	d.isrDepth--
}

// EnterLock notes that the caller acquired the kernel lock. The lock
// nests; every EnterLock must be balanced by a LeaveLock.
func (d *Debug) EnterLock() {
	if !stateCheckEnabled {
		return
	}
	d.lockCnt++
}

// LeaveLock notes a kernel lock release. Releasing with the counter at
// zero raises a violation without touching any state.
func (d *Debug) LeaveLock() {
	if !stateCheckEnabled {
		return
	}
	if d.lockCnt == 0 {
		d.halt(callerName(1))
		return
	}
	d.lockCnt--
	if d.lockCnt == 0 {
		d.lockOwner = 0
	}
}

// SetLockOwner records which thread holds the kernel lock, for diagnostic
// assertions in debug builds. The scheduler calls it after EnterLock.
func (d *Debug) SetLockOwner(t ThreadID) {
	if !stateCheckEnabled {
		return
	}
	d.lockOwner = t
}

// LockOwner returns the recorded lock holder, 0 when unlocked.
func (d *Debug) LockOwner() ThreadID { return d.lockOwner }

// ISRDepth returns the current ISR nesting depth.
func (d *Debug) ISRDepth() int { return d.isrDepth }

// LockCount returns the current kernel-lock nesting count.
func (d *Debug) LockCount() int { return d.lockCnt }

// CheckDisable verifies that interrupts are fully disabled. A mismatch
// between the hardware-observable state and what the caller assumes is
// exactly the drift these checks exist to catch.
func (d *Debug) CheckDisable() {
	if !stateCheckEnabled {
		return
	}
	if d.port.IRQStatus() != IRQDisabled {
		d.halt(callerName(1))
	}
}

// CheckSuspend verifies that interrupts are suspended but still maskable.
func (d *Debug) CheckSuspend() {
	if !stateCheckEnabled {
		return
	}
	if d.port.IRQStatus() != IRQSuspended {
		d.halt(callerName(1))
	}
}

// CheckEnable verifies that interrupts are fully enabled.
func (d *Debug) CheckEnable() {
	if !stateCheckEnabled {
		return
	}
	if d.port.IRQStatus() != IRQEnabled {
		d.halt(callerName(1))
	}
}

// CheckClassI verifies the caller is in ISR context. Kernel primitives
// that are only legal from an interrupt service routine call it on entry.
func (d *Debug) CheckClassI() {
	if !stateCheckEnabled {
		return
	}
	if d.isrDepth == 0 {
		d.halt(callerName(1))
	}
}

// CheckClassS verifies the caller holds the kernel lock and is not in ISR
// context. Blocking primitives call it to reject use from interrupts.
func (d *Debug) CheckClassS() {
	if !stateCheckEnabled {
		return
	}
	if d.lockCnt == 0 || d.isrDepth != 0 {
		d.halt(callerName(1))
	}
}

// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdebug

// Kind is the type of a trace record.
type Kind uint8

const (
	// KindUnused marks a slot that was never written. It is only present
	// in freshly initialized buffers and is never re-entered once tracing
	// starts.
	KindUnused Kind = iota
	KindContextSwitch
	KindISREnter
	KindISRLeave
)

func (k Kind) String() string {
	switch k {
	case KindUnused:
		return "unused"
	case KindContextSwitch:
		return "context switch"
	case KindISREnter:
		return "isr enter"
	case KindISRLeave:
		return "isr leave"
	default:
		return "invalid"
	}
}

// ThreadState is the scheduler state a thread is transitioning into when it
// is switched out. The values are supplied by the scheduler; this package
// only stores them. They fit in 5 bits.
type ThreadState uint8

const (
	StateReady ThreadState = iota
	StateCurrent
	StateSuspended
	StateSleeping
	StateWaitSem
	StateWaitMutex
	StateWaitCond
	StateWaitEvent
	StateWaitMsg
	StateFinal
)

func (s ThreadState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateCurrent:
		return "current"
	case StateSuspended:
		return "suspended"
	case StateSleeping:
		return "sleeping"
	case StateWaitSem:
		return "waiting on semaphore"
	case StateWaitMutex:
		return "waiting on mutex"
	case StateWaitCond:
		return "waiting on condition"
	case StateWaitEvent:
		return "waiting on event"
	case StateWaitMsg:
		return "waiting on message"
	case StateFinal:
		return "final"
	default:
		return "invalid"
	}
}

// ThreadID is an opaque, non-owning handle identifying a thread control
// record. The referenced thread may be destroyed while a record naming it
// is still in the buffer; the handle is only ever stored and relayed,
// never dereferenced.
type ThreadID uintptr

// ObjectID is an opaque, non-owning handle identifying a synchronization
// object a thread is waiting on. NoObject means the switched-out thread
// stayed runnable.
type ObjectID uintptr

// NoObject is the ObjectID of a thread that is not waiting on anything.
const NoObject ObjectID = 0

// Ticks is a coarse system tick counter sample.
type Ticks uint64

// FineStampBits is the width of the fine (cycle-accurate) timestamp.
// Ports without a cycle counter report zero stamps.
const FineStampBits = 24

const fineStampMask = 1<<FineStampBits - 1

// Record is one slot of the trace buffer. A record is self-contained and
// immutable once written; the buffer only ever overwrites whole slots on
// wraparound.
type Record struct {
	Kind Kind
	// State is the state the switched-out thread is entering.
	// Valid only for KindContextSwitch.
	State ThreadState
	// Fine is the cycle counter sample, truncated to FineStampBits.
	Fine uint32
	// Coarse is the system tick sample.
	Coarse Ticks
	// Thread is the switched-in thread. Valid only for KindContextSwitch.
	Thread ThreadID
	// Object is what the switched-out thread is going to wait on, or
	// NoObject. Valid only for KindContextSwitch.
	Object ObjectID
	// ISR is the interrupt source name for KindISREnter and KindISRLeave.
	// The string is supplied by the port glue and stored by reference; it
	// must outlive the buffer (trivially true for literals).
	ISR string
}

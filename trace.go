// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdebug

// OnContextSwitch records a context switch. The scheduler calls it
// immediately before the processor context is swapped. newState is the
// state the outgoing thread is entering, in is the thread about to run,
// and wait is the object the outgoing thread is going to wait on, or
// NoObject if it stays runnable.
func (d *Debug) OnContextSwitch(newState ThreadState, in ThreadID, wait ObjectID) {
	if !traceEnabled || d.mask&MaskSwitch == 0 {
		return
	}
	d.record(Record{
		Kind:   KindContextSwitch,
		State:  newState,
		Thread: in,
		Object: wait,
	})
}

// OnISREnter records entry into the interrupt service routine identified
// by name. The string is stored by reference, never copied, so callers
// must pass something that outlives the buffer; a literal is the expected
// argument.
func (d *Debug) OnISREnter(name string) {
	if !traceEnabled || d.mask&MaskISR == 0 {
		return
	}
	d.record(Record{Kind: KindISREnter, ISR: name})
}

// OnISRLeave records the matching exit. See OnISREnter.
func (d *Debug) OnISRLeave(name string) {
	if !traceEnabled || d.mask&MaskISR == 0 {
		return
	}
	d.record(Record{Kind: KindISRLeave, ISR: name})
}

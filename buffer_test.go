// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !kdebug_disable_trace
// +build !kdebug_disable_trace

package kdebug_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tinyrt/kdebug"
	"github.com/tinyrt/kdebug/kdebugtest"
)

func TestOverwriteKeepsNewest(t *testing.T) {
	// Five inserts into a four-entry buffer: A is gone, B..E survive in
	// temporal order, and the next write lands on the slot holding the
	// oldest survivor.
	d, _, halt := kdebugtest.New(t, 4)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		d.OnISREnter(name)
	}
	snap := d.Snapshot()
	want := []kdebug.Record{
		{Kind: kdebug.KindISREnter, ISR: "B"},
		{Kind: kdebug.KindISREnter, ISR: "C"},
		{Kind: kdebug.KindISREnter, ISR: "D"},
		{Kind: kdebug.KindISREnter, ISR: "E"},
	}
	if diff := cmp.Diff(want, snap.Records, kdebugtest.CmpOptions...); diff != "" {
		t.Errorf("records mismatch (-want, +got):\n%s", diff)
	}
	if got, want := snap.Cursor, 1; got != want {
		t.Errorf("cursor = %d, want %d", got, want)
	}
	d.OnISREnter("F")
	got := d.Snapshot().Records[0]
	if got.ISR != "C" {
		t.Errorf("after one more insert the oldest record is %q, want %q", got.ISR, "C")
	}
	if halt.Halted() {
		t.Errorf("unexpected halt: %q", halt.Last())
	}
}

func TestCursorMonotonicity(t *testing.T) {
	const capacity = 3
	d, _, _ := kdebugtest.New(t, capacity)
	for i := 0; i < 2*capacity+1; i++ {
		if got, want := d.Cursor(), i%capacity; got != want {
			t.Fatalf("before insert %d: cursor = %d, want %d", i, got, want)
		}
		d.OnISREnter("tick")
	}
}

func TestWraparoundKeepsLastN(t *testing.T) {
	const (
		capacity = 4
		inserts  = capacity + 3
	)
	d, _, _ := kdebugtest.New(t, capacity)
	for i := 1; i <= inserts; i++ {
		d.OnContextSwitch(kdebug.StateReady, kdebug.ThreadID(i), kdebug.NoObject)
	}
	snap := d.Snapshot()
	if len(snap.Records) != capacity {
		t.Fatalf("got %d records, want %d", len(snap.Records), capacity)
	}
	for i, r := range snap.Records {
		if want := kdebug.ThreadID(inserts - capacity + 1 + i); r.Thread != want {
			t.Errorf("record %d: thread = %d, want %d", i, r.Thread, want)
		}
	}
}

func TestSnapshotSkipsUnusedSlots(t *testing.T) {
	d, _, _ := kdebugtest.New(t, 4)
	d.OnISREnter("uart")
	d.OnISRLeave("uart")
	snap := d.Snapshot()
	if len(snap.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(snap.Records))
	}
	if snap.Capacity != 4 || snap.Cursor != 2 {
		t.Errorf("header = (%d, %d), want (4, 2)", snap.Capacity, snap.Cursor)
	}
}

func TestTimestampSampling(t *testing.T) {
	d, port, _ := kdebugtest.New(t, 8)
	port.CycleStep = 100
	d.OnISREnter("tim2")
	d.OnISRLeave("tim2")
	snap := d.Snapshot()
	for i, r := range snap.Records {
		if want := kdebug.Ticks(i + 1); r.Coarse != want {
			t.Errorf("record %d: coarse = %d, want %d", i, r.Coarse, want)
		}
		if want := uint32((i + 1) * 100); r.Fine != want {
			t.Errorf("record %d: fine = %d, want %d", i, r.Fine, want)
		}
	}
}

func TestFineStampTruncation(t *testing.T) {
	d, port, _ := kdebugtest.New(t, 4)
	port.Cycles = 1<<kdebug.FineStampBits - 1
	port.CycleStep = 1
	d.OnISREnter("systick")
	if got := d.Snapshot().Records[0].Fine; got != 0 {
		t.Errorf("fine stamp = %#x, want 0 after 24-bit wrap", got)
	}
}

func TestRecordCriticalSection(t *testing.T) {
	// Every write must disable interrupts for the write+advance step and
	// restore the previous state afterwards.
	d, port, _ := kdebugtest.New(t, 4)
	d.OnISREnter("exti0")
	d.OnContextSwitch(kdebug.StateSleeping, 1, kdebug.NoObject)
	if port.Disables != 2 {
		t.Errorf("DisableInterrupts called %d times, want 2", port.Disables)
	}
	if port.Status != kdebug.IRQEnabled {
		t.Errorf("IRQ status = %v after recording, want enabled", port.Status)
	}
}

func TestDefaultCapacity(t *testing.T) {
	port := kdebugtest.NewPort()
	d := kdebug.New(kdebug.Config{Port: port, Mask: kdebug.MaskAll})
	if got := d.Capacity(); got != kdebug.DefaultTraceCapacity {
		t.Errorf("capacity = %d, want %d", got, kdebug.DefaultTraceCapacity)
	}
}

func TestMaskNoneAllocatesNoBuffer(t *testing.T) {
	port := kdebugtest.NewPort()
	d := kdebug.New(kdebug.Config{Port: port, Mask: kdebug.MaskNone})
	d.OnISREnter("uart")
	if got := d.Capacity(); got != 0 {
		t.Errorf("capacity = %d, want 0", got)
	}
	if n := len(d.Snapshot().Records); n != 0 {
		t.Errorf("got %d records, want 0", n)
	}
}

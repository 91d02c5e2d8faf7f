// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdebug

// record stamps r and writes it at the cursor, advancing the cursor modulo
// capacity. It never fails, never blocks and never allocates. The
// write+advance step runs with interrupts disabled, which is what keeps
// two writers off the same slot and keeps records in true temporal order;
// the section is a single slot store plus an increment, so its worst-case
// interrupt latency contribution is a small constant.
func (d *Debug) record(r Record) {
	if d.buf == nil {
		return
	}
	prev := d.port.DisableInterrupts()
	r.Coarse = d.port.Now()
	r.Fine = d.port.CycleStamp() & fineStampMask
	d.buf[d.cursor] = r
	d.cursor++
	if d.cursor == len(d.buf) {
		// Wrap, silently discarding the oldest record. Recency over
		// completeness: the buffer answers "what just happened", it is
		// not an audit log.
		d.cursor = 0
	}
	d.port.RestoreInterrupts(prev)
}

// Capacity returns the trace buffer entry count, 0 when tracing is off.
func (d *Debug) Capacity() int { return len(d.buf) }

// Cursor returns the slot index that will receive the next write.
func (d *Debug) Cursor() int { return d.cursor }

// Snapshot is the read-only view of the trace buffer handed to diagnostic
// tooling. Records are in temporal order, oldest first, with never-written
// slots skipped.
type Snapshot struct {
	Capacity int
	Cursor   int
	Records  []Record
}

// Snapshot copies the buffer out under the same critical section the
// writer uses, so a half-written slot can never be observed. It allocates
// and is meant for post-mortem inspection, not for the record path.
func (d *Debug) Snapshot() Snapshot {
	s := Snapshot{Capacity: len(d.buf)}
	if d.buf == nil {
		return s
	}
	prev := d.port.DisableInterrupts()
	s.Cursor = d.cursor
	s.Records = make([]Record, 0, len(d.buf))
	for i := 0; i < len(d.buf); i++ {
		r := d.buf[(d.cursor+i)%len(d.buf)]
		if r.Kind == KindUnused {
			continue
		}
		s.Records = append(s.Records, r)
	}
	d.port.RestoreInterrupts(prev)
	return s
}

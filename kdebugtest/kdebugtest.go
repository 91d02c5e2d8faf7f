// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kdebugtest supports testing code that uses kdebug.
// It provides a scripted port with deterministic timestamps and a halt
// handler that captures violations instead of stopping anything, so a
// test can drive the core through illegal sequences and inspect the
// outcome.
package kdebugtest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tinyrt/kdebug"
)

// Port is a scripted kdebug.Port. The coarse clock advances by one tick
// per sample and the cycle counter by CycleStep, so every record gets a
// distinct, predictable stamp. The IRQ status is a plain field the test
// sets to whatever hardware state it wants to fake.
type Port struct {
	Ticks     kdebug.Ticks
	Cycles    uint32
	CycleStep uint32
	Status    kdebug.IRQStatus

	// Disables counts DisableInterrupts calls, for tests asserting the
	// critical-section discipline.
	Disables int
}

var _ kdebug.Port = (*Port)(nil)

// NewPort returns a port with interrupts enabled and a cycle counter
// advancing by 100 cycles per sample.
func NewPort() *Port {
	return &Port{CycleStep: 100, Status: kdebug.IRQEnabled}
}

func (p *Port) Now() kdebug.Ticks {
	p.Ticks++
	return p.Ticks
}

func (p *Port) CycleStamp() uint32 {
	p.Cycles += p.CycleStep
	return p.Cycles
}

func (p *Port) IRQStatus() kdebug.IRQStatus { return p.Status }

func (p *Port) DisableInterrupts() kdebug.IRQStatus {
	prev := p.Status
	p.Status = kdebug.IRQDisabled
	p.Disables++
	return prev
}

func (p *Port) RestoreInterrupts(s kdebug.IRQStatus) { p.Status = s }

// Halt captures halt requests.
type Halt struct {
	Reasons []string
}

// Func returns the kdebug.HaltFunc to put in the Config.
func (h *Halt) Func() kdebug.HaltFunc {
	return func(reason string) {
		h.Reasons = append(h.Reasons, reason)
	}
}

// Halted reports whether any violation was raised.
func (h *Halt) Halted() bool { return len(h.Reasons) > 0 }

// Last returns the most recent halt reason, "" if none.
func (h *Halt) Last() string {
	if len(h.Reasons) == 0 {
		return ""
	}
	return h.Reasons[len(h.Reasons)-1]
}

// New builds a core with a fresh scripted port and capturing halt,
// tracing everything into a buffer of the given capacity.
func New(tb testing.TB, capacity int) (*kdebug.Debug, *Port, *Halt) {
	tb.Helper()
	port := NewPort()
	halt := &Halt{}
	d := kdebug.New(kdebug.Config{
		Port:          port,
		Halt:          halt.Func(),
		Mask:          kdebug.MaskAll,
		TraceCapacity: capacity,
	})
	return d, port, halt
}

// CmpOptions compare records while ignoring the timestamp fields, which
// tests usually want stable regardless of how the port was scripted.
var CmpOptions = []cmp.Option{
	cmpopts.IgnoreFields(kdebug.Record{}, "Coarse", "Fine"),
}

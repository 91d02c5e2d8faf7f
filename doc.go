// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kdebug is the runtime self-verification and trace core of the
// TinyRT kernel.
//
// It fuses two responsibilities that share the same privileged execution
// contexts and the same trigger points (every context switch, every
// interrupt boundary):
//
// The system state checker validates, at each kernel API entry and each
// interrupt boundary, that the kernel is being called from a context legal
// for that operation. A violation means kernel state may already be
// inconsistent, so detection requests an immediate halt through the
// injected halt capability; there is no recoverable-error category here.
//
// The trace ring buffer keeps a fixed-capacity, overwrite-on-full log of
// scheduling events (context switches, ISR enter/leave), each stamped with
// the coarse system tick and, where the port supports it, a 24-bit
// cycle-accurate stamp. The buffer favors recency over completeness: it
// answers "what just happened before the anomaly", it is not an audit log.
//
// Every operation completes in bounded, short time and never blocks or
// allocates on the record path, so all of it is safe to call from the
// highest-priority interrupt context. The single write+advance step of the
// ring buffer runs with interrupts disabled via the Port capability; that
// is the only critical section in the package.
//
// It is designed for zero overhead when compiled out: the build tags
// kdebug_disable_trace, kdebug_disable_state_check, kdebug_disable_checks
// and kdebug_disable_asserts turn the corresponding entry points into
// empty functions at compile time, not runtime branches.
package kdebug

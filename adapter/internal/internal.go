// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal holds the record field mapping shared by the decoder
// adapters, so every backend prints the same keys in the same order.
package internal

import "github.com/tinyrt/kdebug"

// Keyvals flattens a record into alternating key/value pairs.
// The keys are stable: time, rt, then thread/state/wtobj for context
// switches or isr for interrupt events.
func Keyvals(r kdebug.Record) []interface{} {
	kvs := []interface{}{
		"time", uint64(r.Coarse),
		"rt", r.Fine,
	}
	switch r.Kind {
	case kdebug.KindContextSwitch:
		kvs = append(kvs,
			"thread", uint64(r.Thread),
			"state", r.State.String(),
		)
		if r.Object != kdebug.NoObject {
			kvs = append(kvs, "wtobj", uint64(r.Object))
		}
	case kdebug.KindISREnter, kdebug.KindISRLeave:
		kvs = append(kvs, "isr", r.ISR)
	}
	return kvs
}

// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ezerolog renders trace snapshots to a zerolog logger.
// It is host-side tooling; the kernel core never imports it.
package ezerolog

import (
	"github.com/rs/zerolog"

	"github.com/tinyrt/kdebug"
)

// Dump writes one info event per record, oldest first.
func Dump(log zerolog.Logger, snap kdebug.Snapshot) {
	for _, r := range snap.Records {
		ev := log.Info().
			Uint64("time", uint64(r.Coarse)).
			Uint32("rt", r.Fine)
		switch r.Kind {
		case kdebug.KindContextSwitch:
			ev = ev.
				Uint64("thread", uint64(r.Thread)).
				Str("state", r.State.String())
			if r.Object != kdebug.NoObject {
				ev = ev.Uint64("wtobj", uint64(r.Object))
			}
		case kdebug.KindISREnter, kdebug.KindISRLeave:
			ev = ev.Str("isr", r.ISR)
		}
		ev.Msg(r.Kind.String())
	}
}

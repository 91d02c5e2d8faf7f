// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ezap renders trace snapshots to a zap logger.
// It is host-side tooling; the kernel core never imports it.
package ezap

import (
	"go.uber.org/zap"

	"github.com/tinyrt/kdebug"
)

// Dump writes one info entry per record, oldest first.
func Dump(log *zap.Logger, snap kdebug.Snapshot) {
	for _, r := range snap.Records {
		fields := []zap.Field{
			zap.Uint64("time", uint64(r.Coarse)),
			zap.Uint32("rt", r.Fine),
		}
		switch r.Kind {
		case kdebug.KindContextSwitch:
			fields = append(fields,
				zap.Uint64("thread", uint64(r.Thread)),
				zap.String("state", r.State.String()),
			)
			if r.Object != kdebug.NoObject {
				fields = append(fields, zap.Uint64("wtobj", uint64(r.Object)))
			}
		case kdebug.KindISREnter, kdebug.KindISRLeave:
			fields = append(fields, zap.String("isr", r.ISR))
		}
		log.Info(r.Kind.String(), fields...)
	}
}

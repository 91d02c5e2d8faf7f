// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elogrus renders trace snapshots to a logrus logger.
// It is host-side tooling; the kernel core never imports it.
package elogrus

import (
	"github.com/sirupsen/logrus"

	"github.com/tinyrt/kdebug"
)

// Dump writes one info entry per record, oldest first.
func Dump(log *logrus.Logger, snap kdebug.Snapshot) {
	for _, r := range snap.Records {
		fields := logrus.Fields{
			"time": uint64(r.Coarse),
			"rt":   r.Fine,
		}
		switch r.Kind {
		case kdebug.KindContextSwitch:
			fields["thread"] = uint64(r.Thread)
			fields["state"] = r.State.String()
			if r.Object != kdebug.NoObject {
				fields["wtobj"] = uint64(r.Object)
			}
		case kdebug.KindISREnter, kdebug.KindISRLeave:
			fields["isr"] = r.ISR
		}
		log.WithFields(fields).Info(r.Kind.String())
	}
}

// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elogr renders trace snapshots to a logr logger.
// It is host-side tooling; the kernel core never imports it.
package elogr

import (
	"github.com/go-logr/logr"

	"github.com/tinyrt/kdebug"
	"github.com/tinyrt/kdebug/adapter/internal"
)

// Dump writes one info line per record, oldest first, with the record
// kind as the message.
func Dump(l logr.Logger, snap kdebug.Snapshot) {
	for _, r := range snap.Records {
		l.Info(r.Kind.String(), internal.Keyvals(r)...)
	}
}

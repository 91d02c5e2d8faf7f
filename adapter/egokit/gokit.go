// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package egokit renders trace snapshots to a go-kit logger.
// It is host-side tooling; the kernel core never imports it.
package egokit

import (
	"github.com/go-kit/kit/log"

	"github.com/tinyrt/kdebug"
	"github.com/tinyrt/kdebug/adapter/internal"
)

// Dump writes one log call per record, oldest first, with the record kind
// under the "msg" key. It stops at the first logger error.
func Dump(l log.Logger, snap kdebug.Snapshot) error {
	for _, r := range snap.Records {
		kvs := append(internal.Keyvals(r), "msg", r.Kind.String())
		if err := l.Log(kvs...); err != nil {
			return err
		}
	}
	return nil
}

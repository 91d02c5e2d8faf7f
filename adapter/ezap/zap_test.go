// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ezap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tinyrt/kdebug"
	"github.com/tinyrt/kdebug/kdebugtest"
)

func Test(t *testing.T) {
	d, _, _ := kdebugtest.New(t, 4)
	d.OnISREnter("uart1")
	d.OnContextSwitch(kdebug.StateWaitSem, 7, 0x40)
	d.OnISRLeave("uart1")

	core, logs := observer.New(zap.InfoLevel)
	Dump(zap.New(core), d.Snapshot())

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	gotMsgs := []string{entries[0].Message, entries[1].Message, entries[2].Message}
	wantMsgs := []string{"isr enter", "context switch", "isr leave"}
	if diff := cmp.Diff(wantMsgs, gotMsgs); diff != "" {
		t.Errorf("messages mismatch (-want, +got):\n%s", diff)
	}
	sw := entries[1].ContextMap()
	if sw["thread"] != uint64(7) || sw["state"] != "waiting on semaphore" || sw["wtobj"] != uint64(0x40) {
		t.Errorf("switch fields = %v", sw)
	}
	if got := entries[0].ContextMap()["isr"]; got != "uart1" {
		t.Errorf("isr field = %v, want uart1", got)
	}
}

// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/tinyrt/kdebug"
)

// Count publishes summary counters for a snapshot: one count per context
// switch, labelled with the outgoing state, and one per ISR entry,
// labelled with the interrupt source.
func Count(ctx context.Context, meter metric.MeterMust, snap kdebug.Snapshot) {
	switches := meter.NewInt64Counter("kdebug/switches")
	isrs := meter.NewInt64Counter("kdebug/isr_enters")
	for _, r := range snap.Records {
		switch r.Kind {
		case kdebug.KindContextSwitch:
			switches.Add(ctx, 1, attribute.String("state", r.State.String()))
		case kdebug.KindISREnter:
			isrs.Add(ctx, 1, attribute.String("isr", r.ISR))
		}
	}
}

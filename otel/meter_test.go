// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/metric"

	"github.com/tinyrt/kdebug"
	"github.com/tinyrt/kdebug/kdebugtest"
)

// Count is exercised against the no-op meter; collecting and asserting on
// aggregated values needs a running export pipeline, which is out of
// reach for a unit test.
func TestCount(t *testing.T) {
	d, _, _ := kdebugtest.New(t, 8)
	d.OnISREnter("uart1")
	d.OnContextSwitch(kdebug.StateReady, 1, kdebug.NoObject)
	d.OnISRLeave("uart1")

	meter := metric.Must(metric.NewNoopMeterProvider().Meter("test"))
	Count(context.Background(), meter, d.Snapshot())
}

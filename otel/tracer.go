// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otel replays trace snapshots into OpenTelemetry, so a dump
// pulled off a target can be inspected with ordinary tracing UIs.
package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tinyrt/kdebug"
)

// Replay reconstructs a span tree from a snapshot. Each ISR enter/leave
// pair becomes a span named after the interrupt source; context switches
// become events on the innermost open span. Coarse tick stamps are mapped
// to wall-clock times as epoch + tick*perTick, so span durations reflect
// the recorded timing rather than replay time.
//
// A snapshot starts mid-stream after wraparound, so unmatched leaves are
// skipped and unmatched enters are closed at the last recorded time.
func Replay(ctx context.Context, tracer trace.Tracer, snap kdebug.Snapshot, epoch time.Time, perTick time.Duration) {
	if len(snap.Records) == 0 {
		return
	}
	at := func(t kdebug.Ticks) time.Time {
		return epoch.Add(time.Duration(t) * perTick)
	}

	type open struct {
		parent context.Context
		span   trace.Span
	}
	var stack []open

	first := snap.Records[0].Coarse
	last := snap.Records[len(snap.Records)-1].Coarse
	ctx, root := tracer.Start(ctx, "kdebug trace", trace.WithTimestamp(at(first)))
	cur := ctx

	for _, r := range snap.Records {
		switch r.Kind {
		case kdebug.KindISREnter:
			c, span := tracer.Start(cur, r.ISR, trace.WithTimestamp(at(r.Coarse)))
			stack = append(stack, open{parent: cur, span: span})
			cur = c
		case kdebug.KindISRLeave:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.span.End(trace.WithTimestamp(at(r.Coarse)))
			cur = top.parent
		case kdebug.KindContextSwitch:
			attrs := []attribute.KeyValue{
				attribute.Int64("thread", int64(r.Thread)),
				attribute.String("state", r.State.String()),
			}
			if r.Object != kdebug.NoObject {
				attrs = append(attrs, attribute.Int64("wtobj", int64(r.Object)))
			}
			trace.SpanFromContext(cur).AddEvent("context switch",
				trace.WithTimestamp(at(r.Coarse)),
				trace.WithAttributes(attrs...))
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top.span.End(trace.WithTimestamp(at(last)))
	}
	root.End(trace.WithTimestamp(at(last)))
}

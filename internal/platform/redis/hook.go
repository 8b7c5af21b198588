// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"net"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/taibuivan/studyhub/internal/platform/redis")

// TracingHook opens one client span per command or pipeline.
//
// A cache miss ([redis.Nil]) is a normal outcome and does not mark the span
// as failed.
type TracingHook struct{}

var _ redis.Hook = TracingHook{}

// DialHook implements [redis.Hook].
func (TracingHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx stdctx.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

// ProcessHook implements [redis.Hook].
func (TracingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx stdctx.Context, cmd redis.Cmder) error {
		ctx, span := start(ctx, "redis."+cmd.Name(), 1)
		err := next(ctx, cmd)
		end(span, err)
		return err
	}
}

// ProcessPipelineHook implements [redis.Hook].
func (TracingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx stdctx.Context, cmds []redis.Cmder) error {
		ctx, span := start(ctx, "redis.pipeline", len(cmds))
		err := next(ctx, cmds)
		end(span, err)
		return err
	}
}

func start(ctx stdctx.Context, name string, commands int) (stdctx.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.Int("db.redis.commands", commands),
		),
	)
}

func end(span trace.Span, err error) {
	if err != nil && !errors.Is(err, redis.Nil) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

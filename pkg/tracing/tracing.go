// Package tracing 提供链路追踪初始化与 span 辅助，不依赖 internal
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "speech-engine"

// StartJobSpan 开始 job 执行 span
func StartJobSpan(ctx context.Context, jobID string, modelID string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, "job.execute",
		trace.WithAttributes(
			attribute.String("job.id", jobID),
			attribute.String("model.id", modelID),
		),
	)
}

// StartLoadSpan 开始模型加载 span
func StartLoadSpan(ctx context.Context, modelID string, modelName string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, "model.load",
		trace.WithAttributes(
			attribute.String("model.id", modelID),
			attribute.String("model.name", modelName),
		),
	)
}

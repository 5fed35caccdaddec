// Package handlerwrapper adapts typed event handlers to watermill.
//
// Handlers are pure transformations: payload in, zero or more Results out.
// The wrapper owns unmarshalling, correlation propagation, tracing and
// publishing so handler code never touches *message.Message.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harbour-City-League/roster-bot/app/shared/attr"
)

// Result is one outbound event produced by a handler.
type Result struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

type ctxKey string

// CtxKeyReplyTo carries a dynamic reply topic requested by the gateway.
// When present it takes precedence over the static success topic.
const CtxKeyReplyTo ctxKey = "reply_to"

// MetadataReplyTo is the message metadata key the gateway sets when it
// wants the response on a request-scoped topic.
const MetadataReplyTo = "reply_to"

// ReplyTo extracts a dynamic reply topic from ctx, or "" when none was set.
func ReplyTo(ctx context.Context) string {
	if rt, ok := ctx.Value(CtxKeyReplyTo).(string); ok {
		return rt
	}
	return ""
}

// WrapTransformingTyped converts a typed handler into a watermill
// no-publisher handler that publishes each Result through publisher.
// Malformed payloads are logged and acked; they would never succeed on
// redelivery.
func WrapTransformingTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	publisher message.Publisher,
	handler func(context.Context, *T) ([]Result, error),
) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		ctx := msg.Context()
		correlationID := middleware.MessageCorrelationID(msg)
		ctx = attr.WithCorrelationID(ctx, correlationID)
		if rt := msg.Metadata.Get(MetadataReplyTo); rt != "" {
			ctx = context.WithValue(ctx, CtxKeyReplyTo, rt)
		}

		if tracer != nil {
			var span trace.Span
			ctx, span = tracer.Start(ctx, handlerName)
			defer span.End()
		}

		payload := new(T)
		if err := json.Unmarshal(msg.Payload, payload); err != nil {
			logger.ErrorContext(ctx, "Dropping malformed message",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			return nil
		}

		outbound, err := handler(ctx, payload)
		if err != nil {
			logger.ErrorContext(ctx, "Handler returned error",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			return err
		}

		for _, res := range outbound {
			data, err := json.Marshal(res.Payload)
			if err != nil {
				return fmt.Errorf("%s: failed to marshal result payload: %w", handlerName, err)
			}
			out := message.NewMessage(watermill.NewUUID(), data)
			out.SetContext(ctx)
			middleware.SetCorrelationID(correlationID, out)
			for k, v := range res.Metadata {
				out.Metadata.Set(k, v)
			}
			if err := publisher.Publish(res.Topic, out); err != nil {
				return fmt.Errorf("%s: failed to publish to %s: %w", handlerName, res.Topic, err)
			}
		}
		return nil
	}
}

package handlerwrapper

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// Register adds a typed transformation handler to the router under
// "<module>.<topic>".
func Register[T any](
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	logger *slog.Logger,
	tracer trace.Tracer,
	module string,
	topic string,
	handler func(context.Context, *T) ([]Result, error),
) {
	handlerName := module + "." + topic
	router.AddNoPublisherHandler(
		handlerName,
		topic,
		subscriber,
		WrapTransformingTyped(handlerName, logger, tracer, publisher, handler),
	)
}

// Package telemetry wraps service operations with tracing, metrics,
// logging and panic recovery, and provides the transactional runner shared
// by every module service.
package telemetry

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/shared/attr"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
)

// Deps carries the observability handles a service operation runs with.
type Deps struct {
	Logger  *slog.Logger
	Metrics observability.Metrics
	Tracer  trace.Tracer
	Service string
}

// WithTelemetry executes op with a span, operation metrics and panic
// recovery. Infrastructure errors are wrapped with the operation name;
// domain failures pass through untouched.
func WithTelemetry[S any, F any](
	ctx context.Context,
	deps Deps,
	operationName string,
	identifier string,
	op func(ctx context.Context) (results.OperationResult[S, F], error),
) (result results.OperationResult[S, F], err error) {
	var span trace.Span
	if deps.Tracer != nil {
		ctx, span = deps.Tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	if deps.Metrics != nil {
		deps.Metrics.RecordOperationAttempt(ctx, operationName, deps.Service)
	}

	startTime := time.Now()
	defer func() {
		if deps.Metrics != nil {
			deps.Metrics.RecordOperationDuration(ctx, operationName, deps.Service, time.Since(startTime))
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			deps.Logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("identifier", identifier),
				attr.Error(err),
			)
			if deps.Metrics != nil {
				deps.Metrics.RecordOperationFailure(ctx, operationName, deps.Service)
			}
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		deps.Logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Error(wrappedErr),
		)
		if deps.Metrics != nil {
			deps.Metrics.RecordOperationFailure(ctx, operationName, deps.Service)
		}
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		deps.Logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Any("failure", *result.Failure),
		)
	}

	if result.IsSuccess() {
		deps.Logger.InfoContext(ctx, "Operation completed successfully",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
		)
	}

	if deps.Metrics != nil {
		deps.Metrics.RecordOperationSuccess(ctx, operationName, deps.Service)
	}

	return result, nil
}

// RunInTx runs fn inside a database transaction. A nil db runs fn against
// a nil handle, which repositories resolve to their default connection;
// tests rely on this.
func RunInTx[S any, F any](
	ctx context.Context,
	db *bun.DB,
	fn func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error),
) (results.OperationResult[S, F], error) {
	if db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]
	err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})
	return result, err
}

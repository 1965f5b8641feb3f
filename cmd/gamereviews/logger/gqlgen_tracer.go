package logger

import (
	"context"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"go.uber.org/zap"
)

var _ interface {
	graphql.HandlerExtension
	graphql.ResponseInterceptor
} = (*Tracer)(nil)

// NewTracer creates a Tracer instance.
func NewTracer(logger *zap.Logger) *Tracer {
	return &Tracer{
		logger: logger,
	}
}

// Tracer logs every completed GraphQL operation.
type Tracer struct {
	logger *zap.Logger
}

func (t Tracer) ExtensionName() string {
	return "Logging Trace"
}

func (t Tracer) Validate(_ graphql.ExecutableSchema) error {
	return nil
}

func (t Tracer) InterceptResponse(ctx context.Context, next graphql.ResponseHandler) *graphql.Response {
	var (
		operationCtx = graphql.GetOperationContext(ctx)
		logger       = t.logger.With(ContextFields(ctx)...)
	)

	resp := next(ctx)

	var errs int
	if resp != nil {
		errs = len(resp.Errors)
	}
	logger.Info(
		"operation complete",
		zap.String("operation", operationName(operationCtx)),
		zap.Duration("duration", time.Since(operationCtx.Stats.OperationStart)),
		zap.Int("errors", errs),
	)
	return resp
}

// operationName retrieves the requested operation's name, falling back to the
// name declared in the document when the request does not specify one.
func operationName(operationCtx *graphql.OperationContext) string {
	if operationCtx.OperationName != "" {
		return operationCtx.OperationName
	}
	if operationCtx.Operation != nil {
		return operationCtx.Operation.Name
	}
	return ""
}

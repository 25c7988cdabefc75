package logs

import "context"

// Span identifies one logical unit of work across log records. NewSpan
// stores one in the context; Handler attaches it to every record handled
// under that context.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType

// SpanFrom returns the span carried by ctx, if any.
func SpanFrom(ctx context.Context) (Span, bool) {
	v := ctx.Value(SpanKey)
	if v == nil {
		return "", false
	}
	return v.(Span), true
}

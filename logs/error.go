package logs

import (
	"context"
	"fmt"
)

// WrapSpan annotates err with the span in ctx so a caller far from the
// logging site can correlate the failure with its records.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := SpanFrom(ctx)
	if !ok {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, span)
}

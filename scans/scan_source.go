package scans

import (
	"context"
	"errors"
	"time"

	"github.com/reusee/lam/debugs"
	"github.com/reusee/lam/diags"
	"github.com/reusee/lam/lamconfigs"
	"github.com/reusee/lam/lamlang"
	"github.com/reusee/lam/logs"
)

type ScanSource func(ctx context.Context, source *lamlang.Source) ([]lamlang.Token, error)

func (Module) ScanSource(
	logger logs.Logger,
	newSpan logs.NewSpan,
	render diags.Render,
	debugTap lamconfigs.DebugTap,
	tap debugs.Tap,
) ScanSource {

	return func(ctx context.Context, source *lamlang.Source) ([]lamlang.Token, error) {
		ctx, _ = newSpan(ctx, "")

		t0 := time.Now()
		tokens, err := source.Tokenize()
		elapsed := time.Since(t0)

		if err != nil {
			var errs lamlang.ScanErrors
			if errors.As(err, &errs) {
				logger.ErrorContext(ctx, "scan failed",
					"source", source.Name,
					"errors", len(errs),
					"elapsed", elapsed,
					"report", render(source, errs),
				)
				if debugTap {
					tap(ctx, "scan errors", map[string]any{
						"source": source.Name,
						"errors": errs,
					})
				}
			}
			return nil, logs.WrapSpan(ctx, err)
		}

		logger.InfoContext(ctx, "scan done",
			"source", source.Name,
			"tokens", len(tokens),
			"elapsed", elapsed,
		)
		if debugTap {
			tap(ctx, "scan tokens", map[string]any{
				"source": source.Name,
				"tokens": tokens,
			})
		}

		return tokens, nil
	}
}

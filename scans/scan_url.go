package scans

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/reusee/lam/lamconfigs"
	"github.com/reusee/lam/lamlang"
	"github.com/reusee/lam/nets"
)

type ScanURL func(ctx context.Context, url string) ([]lamlang.Token, error)

func (Module) ScanURL(
	client nets.HTTPClient,
	maxBytes lamconfigs.MaxSourceBytes,
	scanSource ScanSource,
) ScanURL {

	return func(ctx context.Context, url string) ([]lamlang.Token, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
		}

		content, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
		if err != nil {
			return nil, err
		}
		if int64(len(content)) > int64(maxBytes) {
			return nil, fmt.Errorf("fetch %s: source exceeds %d bytes", url, maxBytes)
		}

		return scanSource(ctx, lamlang.NewSource(url, string(content)))
	}
}

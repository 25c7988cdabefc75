package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

// HTTPClient fetches through the proxy-aware dialer. Proxying happens at
// the dial layer, so the transport itself sets no Proxy.
func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
		},
	}
}

package nets

import (
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/lam/configs"
	"github.com/reusee/lam/logs"
	"github.com/reusee/lam/modes"
	"github.com/reusee/lam/vars"
	"golang.org/x/net/proxy"
)

// ProxyAddr is the proxy URL remote fetches go through; empty means direct.
// Config keys win over environment variables. Outside production it is
// always empty so tests never pick up a host proxy.
type ProxyAddr string

var proxyConfigKeys = []string{
	"proxy_addr",
	"proxy_address",
	"http_proxy",
	"socks_proxy",
}

var proxyEnvVars = []string{
	"ALL_PROXY",
	"all_proxy",
	"HTTP_PROXY",
	"http_proxy",
	"SOCKS_PROXY",
	"socks_proxy",
}

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		logger.Info("proxy", "addr", ret)
	}()

	if mode != modes.ModeProduction {
		return ""
	}

	var candidates []ProxyAddr
	for _, key := range proxyConfigKeys {
		candidates = append(candidates, configs.First[ProxyAddr](loader, key))
	}
	for _, name := range proxyEnvVars {
		candidates = append(candidates, ProxyAddr(os.Getenv(name)))
	}
	return vars.FirstNonZero(candidates...)
}

// GetProxyURL parses ProxyAddr once. A bare "socks" scheme normalizes to
// "socks5", which is what x/net/proxy registers.
type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := any(&net.Dialer{}).(Dialer)
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		return proxyDialer.(Dialer), nil
	})
}

package web

import (
	"fmt"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
)

const defaultUserAgent = "wikiep/1.0 (https://github.com/brogergvhs/wikiep; episode list scraper) Go-http-client"

type Logger interface {
	Debugf(string, ...any)
}

type ClientOptions struct {
	Timeout     time.Duration
	UserAgent   string
	Cloudflare  bool
	Transport   http.RoundTripper
	DebugLogger Logger
}

func NewClient(opts ClientOptions) *http.Client {
	var base http.RoundTripper
	if opts.Transport != nil {
		base = opts.Transport
	} else {
		base = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 16,
			ForceAttemptHTTP2:   true,
		}
	}

	if opts.Cloudflare {
		base = cloudflarebp.AddCloudFlareByPass(base)
	}

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: roundTripper{
			base: base,
			ua:   PickUserAgent(opts.UserAgent),
			log:  opts.DebugLogger,
		},
	}

	if opts.DebugLogger != nil {
		opts.DebugLogger.Debugf("HTTP client initialized (timeout=%s, ua=%q, cloudflare=%t)\n",
			opts.Timeout, PickUserAgent(opts.UserAgent), opts.Cloudflare)
	}

	return client
}

type roundTripper struct {
	base http.RoundTripper
	ua   string
	log  Logger
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.ua != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", rt.ua)
	}

	if rt.log != nil {
		rt.log.Debugf("HTTP %s %s\n", req.Method, req.URL.String())
	}

	return rt.base.RoundTrip(req)
}

// DoWithRetry retries transport errors and 5xx responses with linear backoff.
// Other statuses are returned to the caller as they are.
func DoWithRetry(c *http.Client, req *http.Request, attempts int, backoff time.Duration) (*http.Response, error) {
	if attempts < 1 {
		attempts = 1
	}

	var resp *http.Response
	var err error

	for i := 1; i <= attempts; i++ {
		resp, err = c.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}

		if i == attempts {
			break
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff * time.Duration(i)):
		}
	}

	if err == nil && resp != nil {
		return nil, fmt.Errorf("HTTP %d after %d attempts", resp.StatusCode, attempts)
	}

	return nil, err
}

// PickUserAgent returns override when set. Wikimedia asks API and scraper
// clients to identify themselves, so the default is not a browser string.
func PickUserAgent(override string) string {
	if override != "" {
		return override
	}

	return defaultUserAgent
}

package pool

import (
	"crypto/tls"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/oauth2"
)

// HTTPPool interface for HTTP client providers
// Implementations can provide connection pooling, custom timeouts, etc.
type HTTPPool interface {
	GetHTTPClient() *http.Client
}

// PoolConfig holds the settings used to build a pool's client
type PoolConfig struct {
	// InsecureSkipVerify allows self-signed certificates
	// WARNING: This should be false in production for security
	InsecureSkipVerify bool

	// Connection pool settings
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration

	// Default timeout for requests
	Timeout time.Duration

	// Token, when set, is sent as a bearer token on every request
	Token string
}

// DefaultPoolConfig returns sensible defaults (secure by default)
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		InsecureSkipVerify:  false,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		Timeout:             30 * time.Second,
	}
}

var (
	defaultPool HTTPPool
	poolOnce    sync.Once
)

// GetPool returns the shared pool built from DefaultPoolConfig
func GetPool() HTTPPool {
	poolOnce.Do(func() {
		defaultPool = New(nil)
	})
	return defaultPool
}

// DefaultPool is the default HTTP pool implementation
type DefaultPool struct {
	httpClient *http.Client
}

// New creates a pool from cfg; a nil cfg uses DefaultPoolConfig
func New(cfg *PoolConfig) *DefaultPool {
	if cfg == nil {
		cfg = DefaultPoolConfig()
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	http2.ConfigureTransport(transport)

	var rt http.RoundTripper = transport
	if cfg.Token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: cfg.Token,
				TokenType:   "Bearer",
			}),
			Base: transport,
		}
	}

	return &DefaultPool{
		httpClient: &http.Client{
			Transport: rt,
			Timeout:   cfg.Timeout,
		},
	}
}

// GetHTTPClient returns the shared HTTP client
func (p *DefaultPool) GetHTTPClient() *http.Client {
	return p.httpClient
}

// Ensure DefaultPool implements HTTPPool
var _ HTTPPool = (*DefaultPool)(nil)

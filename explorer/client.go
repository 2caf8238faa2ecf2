package explorer

import (
	"github.com/bitfsorg/blockexplorer-go/network"
	log "github.com/sirupsen/logrus"
)

const defaultMaxConcurrentFetches = 8

// EndpointResolver produces the fully qualified URL of a service path on a network.
type EndpointResolver interface {
	ResolveEndpoint(path string, network network.NetworkID) (string, error)
}

// TxCache stores raw transaction hex by txid. Only transactions that are
// already confirmed are written to it.
type TxCache interface {
	GetTxHex(txid string) (string, bool, error)
	PutTxHex(txid, txHex string) error
}

// Client talks to an Esplora-compatible block explorer. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	gateway    network.Gateway
	endpoints  EndpointResolver
	cache      TxCache
	maxFetches int
	logger     log.FieldLogger
}

// Option configures a Client.
type Option func(c *Client)

// WithTxCache enables lookups of confirmed parent transactions in cache.
func WithTxCache(cache TxCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithMaxConcurrentFetches caps the parallel transaction fetches of one
// ResolveUTXOs call. Values below 1 are ignored.
func WithMaxConcurrentFetches(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxFetches = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client that sends requests through gateway to the
// endpoints produced by endpoints.
func NewClient(gateway network.Gateway, endpoints EndpointResolver, opts ...Option) (*Client, error) {
	if gateway == nil || endpoints == nil {
		return nil, ErrNilParam
	}
	c := &Client{
		gateway:    gateway,
		endpoints:  endpoints,
		maxFetches: defaultMaxConcurrentFetches,
		logger:     network.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

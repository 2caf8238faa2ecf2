package explorer

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bitfsorg/blockexplorer-go/network"
	"github.com/stretchr/testify/require"
)

const testBase = "https://explorer.test/api"

// fakeExplorer answers GET requests from a path -> body table. Paths missing
// from the table fail like a 404 from the service.
type fakeExplorer struct {
	responses map[string]string
	failures  map[string]error

	mu    sync.Mutex
	calls map[string]int
	total atomic.Int64
}

func newFakeExplorer(responses map[string]string) *fakeExplorer {
	return &fakeExplorer{
		responses: responses,
		failures:  map[string]error{},
		calls:     map[string]int{},
	}
}

func (f *fakeExplorer) get(ctx context.Context, url string) ([]byte, error) {
	f.total.Add(1)
	path := strings.TrimPrefix(url, testBase)
	f.mu.Lock()
	f.calls[path]++
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.failures[path]; ok {
		return nil, err
	}
	body, ok := f.responses[path]
	if !ok {
		return nil, &network.RemoteServiceError{
			Method:     http.MethodGet,
			URL:        url,
			StatusCode: http.StatusNotFound,
			Payload:    []byte("Transaction not found"),
			Err:        network.ErrRequestFailed,
		}
	}
	return []byte(body), nil
}

func (f *fakeExplorer) callsFor(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func newTestClient(t *testing.T, gw network.Gateway, opts ...Option) *Client {
	t.Helper()
	resolver := network.NewEndpointResolver(map[network.NetworkID]string{
		network.MainNet: testBase,
		network.TestNet: testBase,
	})
	c, err := NewClient(gw, resolver, opts...)
	require.NoError(t, err)
	return c
}

// memCache is an in-memory TxCache.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
	getErr  error
	putErr  error
}

func newMemCache() *memCache { return &memCache{entries: map[string]string{}} }

func (m *memCache) GetTxHex(txid string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.entries[txid]
	return v, ok, nil
}

func (m *memCache) PutTxHex(txid, txHex string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[txid] = txHex
	return nil
}

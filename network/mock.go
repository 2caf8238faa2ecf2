package network

import "context"

// MockGateway is a test double for Gateway.
// The function field for a method must be set before that method is called,
// and must be safe for concurrent use when the caller fans out.
type MockGateway struct {
	GetFn  func(ctx context.Context, url string) ([]byte, error)
	PostFn func(ctx context.Context, url, contentType string, body []byte) ([]byte, error)
}

func (m *MockGateway) Get(ctx context.Context, url string) ([]byte, error) {
	return m.GetFn(ctx, url)
}
func (m *MockGateway) Post(ctx context.Context, url, contentType string, body []byte) ([]byte, error) {
	return m.PostFn(ctx, url, contentType, body)
}

package network

import (
	"fmt"
	"strings"
)

// NetworkID selects which chain the explorer is queried for.
type NetworkID string

// Known networks.
const (
	MainNet NetworkID = "mainnet"
	TestNet NetworkID = "testnet"
	SigNet  NetworkID = "signet"
	RegTest NetworkID = "regtest"
)

// DefaultEndpoints maps networks to public Esplora-compatible API roots.
// Regtest is intentionally omitted to require explicit configuration.
var DefaultEndpoints = map[NetworkID]string{
	MainNet: "https://blockstream.info/api",
	TestNet: "https://blockstream.info/testnet/api",
	SigNet:  "https://mempool.space/signet/api",
}

var known = map[NetworkID]bool{
	MainNet: true,
	TestNet: true,
	SigNet:  true,
	RegTest: true,
}

// ParseNetwork returns the NetworkID for name. Matching is case-insensitive.
func ParseNetwork(name string) (NetworkID, error) {
	id := NetworkID(strings.ToLower(strings.TrimSpace(name)))
	if !known[id] {
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return id, nil
}

// EndpointResolver turns a service path into a fully qualified URL for a network.
type EndpointResolver struct {
	bases map[NetworkID]string
}

// NewEndpointResolver creates a resolver seeded with DefaultEndpoints. Entries in
// overrides take precedence; empty override values are ignored.
func NewEndpointResolver(overrides map[NetworkID]string) *EndpointResolver {
	bases := make(map[NetworkID]string, len(DefaultEndpoints)+len(overrides))
	for id, base := range DefaultEndpoints {
		bases[id] = base
	}
	for id, base := range overrides {
		if base != "" {
			bases[id] = strings.TrimRight(base, "/")
		}
	}
	return &EndpointResolver{bases: bases}
}

// ResolveEndpoint joins path onto the base endpoint of network.
func (r *EndpointResolver) ResolveEndpoint(path string, network NetworkID) (string, error) {
	if !known[network] {
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
	base, ok := r.bases[network]
	if !ok || base == "" {
		return "", fmt.Errorf("%w: %s requires an explicit explorer URL", ErrNoEndpoint, network)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path, nil
}

package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/bitfsorg/blockexplorer-go/network"
)

// feeConfirmationTarget is the block target read from the fee table.
const feeConfirmationTarget = "3"

// EstimateFee returns the explorer's fee rate for confirmation within three
// blocks, rounded up to a whole minor unit per virtual byte.
func (c *Client) EstimateFee(ctx context.Context, net network.NetworkID) (FeeEstimate, error) {
	feeURL, err := c.endpoints.ResolveEndpoint("/fee-estimates", net)
	if err != nil {
		return 0, err
	}
	body, err := c.gateway.Get(ctx, feeURL)
	if err != nil {
		return 0, network.AsRemoteServiceError(http.MethodGet, feeURL, err)
	}

	var estimates map[string]float64
	if err := json.Unmarshal(body, &estimates); err != nil {
		return 0, network.InvalidResponse(http.MethodGet, feeURL, "decode fee estimates", err)
	}
	rate, ok := estimates[feeConfirmationTarget]
	if !ok {
		return 0, &RemoteServiceError{
			Method: http.MethodGet,
			URL:    feeURL,
			Err:    fmt.Errorf("%w: target %s blocks", ErrFeeTargetMissing, feeConfirmationTarget),
		}
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 || rate >= 1<<63 {
		return 0, network.InvalidResponse(http.MethodGet, feeURL, fmt.Sprintf("fee rate %v out of range", rate), nil)
	}
	return FeeEstimate(math.Ceil(rate)), nil
}

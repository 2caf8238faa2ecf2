package explorer

import (
	"context"
	"net/http"
	"strings"

	"github.com/bitfsorg/blockexplorer-go/network"
	log "github.com/sirupsen/logrus"
)

// Broadcast submits a signed raw transaction and returns the explorer's answer
// unchanged. The transaction is not inspected; the explorer decides validity.
func (c *Client) Broadcast(ctx context.Context, txHex string, net network.NetworkID) (BroadcastReceipt, error) {
	if strings.TrimSpace(txHex) == "" {
		return nil, ErrEmptyTransaction
	}

	txURL, err := c.endpoints.ResolveEndpoint("/tx", net)
	if err != nil {
		return nil, err
	}
	body, err := c.gateway.Post(ctx, txURL, "text/plain", []byte(txHex))
	if err != nil {
		return nil, network.AsRemoteServiceError(http.MethodPost, txURL, err)
	}

	c.logger.WithFields(log.Fields{"network": net, "receipt": string(body)}).Info("broadcast accepted")
	return BroadcastReceipt(body), nil
}

package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bitfsorg/blockexplorer-go/network"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ResolveUTXOs lists the unspent outputs of address and attaches to each the
// raw hex of its parent transaction.
//
// The result is all-or-nothing: if the listing or any parent fetch fails, no
// records are returned and the error is a *RemoteServiceError. An address
// without outputs yields an empty slice. Records keep the listing order.
func (c *Client) ResolveUTXOs(ctx context.Context, address string, net network.NetworkID) ([]UnspentOutput, error) {
	if strings.TrimSpace(address) == "" {
		return nil, ErrInvalidAddress
	}

	listURL, err := c.endpoints.ResolveEndpoint("/address/"+url.PathEscape(address)+"/utxo", net)
	if err != nil {
		return nil, err
	}
	body, err := c.gateway.Get(ctx, listURL)
	if err != nil {
		return nil, network.AsRemoteServiceError(http.MethodGet, listURL, err)
	}

	var listing []utxoDescriptor
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, network.InvalidResponse(http.MethodGet, listURL, "decode utxo listing", err)
	}
	for i, d := range listing {
		if d.TxID == "" {
			return nil, network.InvalidResponse(http.MethodGet, listURL, fmt.Sprintf("utxo %d has no txid", i), nil)
		}
		if d.Value == nil || d.Value.Sign() < 0 {
			return nil, network.InvalidResponse(http.MethodGet, listURL, fmt.Sprintf("utxo %d has no valid value", i), nil)
		}
	}

	c.logger.WithFields(log.Fields{"address": address, "network": net, "count": len(listing)}).Debug("listed utxos")
	if len(listing) == 0 {
		return []UnspentOutput{}, nil
	}

	parents, err := c.fetchParents(ctx, net, listing)
	if err != nil {
		return nil, err
	}

	utxos := make([]UnspentOutput, len(listing))
	for i, d := range listing {
		utxos[i] = NewUnspentOutput(d.Status.Confirmed, d.TxID, d.Vout, d.Value, parents[d.TxID])
	}
	return utxos, nil
}

// fetchParents fetches the hex of every distinct parent transaction in listing
// concurrently. The first failure cancels the remaining fetches.
func (c *Client) fetchParents(ctx context.Context, net network.NetworkID, listing []utxoDescriptor) (map[string]string, error) {
	var txids []string
	confirmed := make(map[string]bool, len(listing))
	for _, d := range listing {
		if _, seen := confirmed[d.TxID]; !seen {
			txids = append(txids, d.TxID)
		}
		// A transaction is confirmed if any of its outputs says so.
		confirmed[d.TxID] = confirmed[d.TxID] || d.Status.Confirmed
	}

	hexes := make([]string, len(txids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxFetches)
	for i, txid := range txids {
		g.Go(func() error {
			txHex, err := c.parentHex(gctx, net, txid, confirmed[txid])
			if err != nil {
				return err
			}
			hexes[i] = txHex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	parents := make(map[string]string, len(txids))
	for i, txid := range txids {
		parents[txid] = hexes[i]
	}
	return parents, nil
}

func (c *Client) parentHex(ctx context.Context, net network.NetworkID, txid string, confirmed bool) (string, error) {
	useCache := c.cache != nil && confirmed
	if useCache {
		txHex, ok, err := c.cache.GetTxHex(txid)
		if err != nil {
			c.logger.WithField("txid", txid).Warnf("tx cache read failed: %s", err)
		} else if ok {
			return txHex, nil
		}
	}

	txURL, err := c.endpoints.ResolveEndpoint("/tx/"+url.PathEscape(txid)+"/hex", net)
	if err != nil {
		return "", err
	}
	body, err := c.gateway.Get(ctx, txURL)
	if err != nil {
		return "", network.AsRemoteServiceError(http.MethodGet, txURL, err)
	}
	txHex := strings.TrimSpace(string(body))
	if txHex == "" {
		return "", network.InvalidResponse(http.MethodGet, txURL, "empty transaction hex", nil)
	}

	if useCache {
		if err := c.cache.PutTxHex(txid, txHex); err != nil {
			c.logger.WithField("txid", txid).Warnf("tx cache write failed: %s", err)
		}
	}
	return txHex, nil
}

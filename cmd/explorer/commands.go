package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitfsorg/blockexplorer-go/config"
	"github.com/bitfsorg/blockexplorer-go/explorer"
	"github.com/bitfsorg/blockexplorer-go/network"
	"github.com/bitfsorg/blockexplorer-go/txcache"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func utxosCmd() *cli.Command {
	return &cli.Command{
		Name:      "utxos",
		Usage:     "list spendable outputs of an address with their parent transactions",
		ArgsUsage: "<address>",
		Action:    utxosAction,
	}
}

func feeCmd() *cli.Command {
	return &cli.Command{
		Name:   "fee",
		Usage:  "print the fee rate (sat/vB) for confirmation within 3 blocks",
		Action: feeAction,
	}
}

func broadcastCmd() *cli.Command {
	return &cli.Command{
		Name:      "broadcast",
		Usage:     "submit a signed raw transaction; reads stdin when no argument is given",
		ArgsUsage: "[tx-hex]",
		Action:    broadcastAction,
	}
}

// session is a configured client plus whatever must be released after use.
type session struct {
	client  *explorer.Client
	network network.NetworkID
	cache   *txcache.BoltCache
}

func (s *session) close() {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			log.Warnf("failed to close tx cache: %s", err)
		}
	}
}

func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Read(ctx.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if ctx.IsSet("network") {
		cfg.Network = strings.ToLower(ctx.String("network"))
	}
	if ctx.IsSet("url") {
		cfg.ExplorerURL = ctx.String("url")
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newSession(ctx *cli.Context) (*session, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %s", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %s", err)
	}
	log.SetLevel(level)
	log.SetOutput(ctx.App.ErrWriter)

	logger := log.StandardLogger()
	gw := network.NewHTTPGateway(network.GatewayConfig{
		Timeout:   cfg.Timeout,
		UserAgent: "explorer/" + ctx.App.Version,
		Logger:    logger,
	})

	opts := []explorer.Option{
		explorer.WithMaxConcurrentFetches(cfg.MaxConcurrentFetches),
		explorer.WithLogger(logger),
	}
	s := &session{network: network.NetworkID(cfg.Network)}
	if cfg.CacheFile != "" {
		cache, err := txcache.Open(cfg.CacheFile)
		if err != nil {
			return nil, err
		}
		s.cache = cache
		opts = append(opts, explorer.WithTxCache(cache))
	}

	client, err := explorer.NewClient(gw, network.NewEndpointResolver(cfg.Endpoints()), opts...)
	if err != nil {
		s.close()
		return nil, err
	}
	s.client = client
	log.Debugf("explorer config: %+v", cfg)
	return s, nil
}

func utxosAction(ctx *cli.Context) error {
	address := ctx.Args().First()
	if address == "" {
		return fmt.Errorf("missing address argument")
	}

	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	utxos, err := s.client.ResolveUTXOs(ctx.Context, address, s.network)
	if err != nil {
		return err
	}
	return printJSON(ctx.App.Writer, utxos)
}

func feeAction(ctx *cli.Context) error {
	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	fee, err := s.client.EstimateFee(ctx.Context, s.network)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, uint64(fee))
	return err
}

func broadcastAction(ctx *cli.Context) error {
	txHex := ctx.Args().First()
	if txHex == "" {
		data, err := io.ReadAll(ctx.App.Reader)
		if err != nil {
			return fmt.Errorf("read transaction: %w", err)
		}
		txHex = strings.TrimSpace(string(data))
	}

	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	receipt, err := s.client.Broadcast(ctx.Context, txHex, s.network)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, receipt.String())
	return err
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

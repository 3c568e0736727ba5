package ethrpc

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/trebuchet-org/treb-resolve/internal/domain"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// Connector dials the node configured by --rpc-url or --network
type Connector struct {
	cfg *config.RuntimeConfig
	log *slog.Logger
}

// NewConnector creates a new connector
func NewConnector(cfg *config.RuntimeConfig, log *slog.Logger) *Connector {
	return &Connector{cfg: cfg, log: log}
}

// Connect dials the configured endpoint
func (c *Connector) Connect(ctx context.Context) (usecase.ChainConnection, error) {
	if c.cfg.RPCURL == "" {
		return nil, domain.ErrNoRPCURL
	}

	c.log.Debug("connecting to node", "endpoint", c.Endpoint())
	t, err := Dial(ctx, c.cfg.RPCURL,
		WithPollInterval(c.cfg.PollInterval),
		WithLogger(c.log),
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Endpoint names the configured network, or the RPC URL with any
// credentials removed
func (c *Connector) Endpoint() string {
	if c.cfg.Network != "" {
		return c.cfg.Network
	}
	return redact(c.cfg.RPCURL)
}

func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	u.User = nil
	u.RawQuery = ""
	return u.String()
}

var _ usecase.ChainConnector = (*Connector)(nil)

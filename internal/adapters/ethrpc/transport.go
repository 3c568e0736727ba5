package ethrpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// DefaultPollInterval is how often WaitReceipt asks the node for a receipt
const DefaultPollInterval = time.Second

// Transport implements contract.Transport on top of a JSON-RPC connection.
// It is safe for concurrent use.
type Transport struct {
	rpc          *rpc.Client
	client       *ethclient.Client
	pollInterval time.Duration
	log          *slog.Logger
}

// Option configures a Transport
type Option func(*Transport)

// WithPollInterval sets the receipt polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(t *Transport) {
		if d > 0 {
			t.pollInterval = d
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(t *Transport) {
		if log != nil {
			t.log = log
		}
	}
}

// Dial connects to the node at rawurl (http, ws or ipc).
func Dial(ctx context.Context, rawurl string, opts ...Option) (*Transport, error) {
	client, err := rpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	return NewTransport(client, opts...), nil
}

// NewTransport wraps an existing RPC client.
func NewTransport(client *rpc.Client, opts ...Option) *Transport {
	t := &Transport{
		rpc:          client,
		client:       ethclient.NewClient(client),
		pollInterval: DefaultPollInterval,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NetworkID returns the node's net_version.
func (t *Transport) NetworkID(ctx context.Context) (string, error) {
	id, err := t.client.NetworkID(ctx)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// sendTxArgs mirrors the eth_sendTransaction parameter object
type sendTxArgs struct {
	From  *common.Address `json:"from,omitempty"`
	Gas   *hexutil.Uint64 `json:"gas,omitempty"`
	Value *hexutil.Big    `json:"value,omitempty"`
	Input hexutil.Bytes   `json:"input"`
	Data  hexutil.Bytes   `json:"data"`
}

// SendTransaction submits req with eth_sendTransaction; the node signs it
// with one of its unlocked accounts.
func (t *Transport) SendTransaction(ctx context.Context, req contract.TransactionRequest) (common.Hash, error) {
	args := sendTxArgs{
		From:  req.From,
		Input: req.Data,
		Data:  req.Data,
	}
	if req.Gas != 0 {
		gas := hexutil.Uint64(req.Gas)
		args.Gas = &gas
	}
	if req.Value != nil {
		args.Value = (*hexutil.Big)(req.Value)
	}

	var hash common.Hash
	if err := t.rpc.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, err
	}
	t.log.Debug("transaction submitted", "hash", hash.Hex())
	return hash, nil
}

// WaitReceipt polls for the receipt of hash until it is available or ctx
// ends.
func (t *Transport) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := t.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		t.log.Debug("transaction not yet mined", "hash", hash.Hex())

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close closes the underlying connection.
func (t *Transport) Close() {
	t.rpc.Close()
}

var _ contract.Transport = (*Transport)(nil)

package contract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// MockTransport is a mock implementation of contract.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) NetworkID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTransport) SendTransaction(ctx context.Context, req contract.TransactionRequest) (common.Hash, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockTransport) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

const counterABI = `[
	{"type":"constructor","inputs":[{"name":"start","type":"uint256"}]},
	{"type":"function","name":"count","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"}
]`

const pairABI = `[
	{"type":"constructor","inputs":[{"name":"a","type":"uint256"},{"name":"b","type":"address"}]}
]`

func mustABI(t *testing.T, def string) abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(def))
	require.NoError(t, err)
	return parsed
}

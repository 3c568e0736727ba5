package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) Load(ctx context.Context, ref string) (*contract.Artifact, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Artifact), args.Error(1)
}

func (m *MockArtifactRepository) Resolve(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactRepository) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockArtifactRepository) RecordDeployment(ctx context.Context, ref string, networkID string, network contract.Network) error {
	args := m.Called(ctx, ref, networkID, network)
	return args.Error(0)
}

// MockConnection is a mock implementation of ChainConnection
type MockConnection struct {
	mock.Mock
}

func (m *MockConnection) NetworkID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockConnection) SendTransaction(ctx context.Context, req contract.TransactionRequest) (common.Hash, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockConnection) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

func (m *MockConnection) Close() {
	m.Called()
}

// MockConnector is a mock implementation of ChainConnector
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) Connect(ctx context.Context) (usecase.ChainConnection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ChainConnection), args.Error(1)
}

func (m *MockConnector) Endpoint() string {
	return "http://localhost:8545"
}

// MockSelector is a mock implementation of ArtifactSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectArtifact(ctx context.Context, paths []string, prompt string) (string, error) {
	args := m.Called(ctx, paths, prompt)
	return args.String(0), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// passthroughParser hands raw arguments to the ABI encoder untouched
type passthroughParser struct{}

func (passthroughParser) Parse(_ abi.Arguments, raw []string) ([]any, error) {
	out := make([]any, len(raw))
	for i, r := range raw {
		out[i] = r
	}
	return out, nil
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

func (m *MockProgressSink) stages() []usecase.ProgressStage {
	stages := make([]usecase.ProgressStage, len(m.events))
	for i, e := range m.events {
		stages[i] = e.Stage
	}
	return stages
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

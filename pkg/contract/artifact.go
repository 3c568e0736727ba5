package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Network is a deployment record inside an artifact's network table
type Network struct {
	Address         common.Address
	TransactionHash common.Hash
}

// Networks maps a network identifier, as reported by net_version, to the
// deployment recorded for it.
type Networks map[string]Network

// Artifact is a compiled contract: its ABI, creation bytecode (possibly
// containing library placeholders) and the networks it is deployed on.
type Artifact struct {
	ContractName string
	ABI          abi.ABI
	Bytecode     string
	Networks     Networks
}

// TransactionRequest holds the options of a transaction to submit.
// Nil From and Value, and zero Gas, leave the choice to the node.
type TransactionRequest struct {
	From  *common.Address
	Value *big.Int
	Gas   uint64
	Data  []byte
}

// Transport is the node connection used to acquire contract instances.
// Implementations must be safe for concurrent use; retry and timeout policy
// belongs to the implementation.
type Transport interface {
	// NetworkID returns the identifier of the network the transport is
	// connected to.
	NetworkID(ctx context.Context) (string, error)
	// SendTransaction broadcasts a transaction and returns its hash.
	SendTransaction(ctx context.Context, req TransactionRequest) (common.Hash, error)
	// WaitReceipt blocks until the transaction is mined.
	WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// Instance is a contract resolved to a concrete address.
type Instance struct {
	transport Transport
	abi       abi.ABI
	address   common.Address
	txHash    common.Hash
	networkID string
}

// Transport returns the transport the instance was resolved with.
func (i *Instance) Transport() Transport { return i.transport }

// ABI returns the contract's ABI.
func (i *Instance) ABI() abi.ABI { return i.abi }

// Address returns the contract's on-chain address.
func (i *Instance) Address() common.Address { return i.address }

// TransactionHash returns the hash of the creation transaction, or the zero
// hash when it is not known.
func (i *Instance) TransactionHash() common.Hash { return i.txHash }

// NetworkID returns the network identifier the instance was looked up on.
// It is empty for instances created by a deployment.
func (i *Instance) NetworkID() string { return i.networkID }

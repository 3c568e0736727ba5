package contract

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DeployResolver waits for a deployment transaction to be mined and resolves
// the created instance from its receipt.
//
// Like DeployedResolver it hands out exactly one result and panics when
// driven again afterwards. It is not safe for concurrent use.
type DeployResolver struct {
	args    *deployArgs
	pending *future[*types.Receipt]

	// hash is written once, before submitted is closed.
	hash      common.Hash
	submitted chan struct{}
}

type deployArgs struct {
	transport Transport
	name      string
	abi       abi.ABI
}

func deploy(ctx context.Context, t Transport, artifact Artifact, req TransactionRequest) *DeployResolver {
	r := &DeployResolver{
		args: &deployArgs{
			transport: t,
			name:      artifact.ContractName,
			abi:       artifact.ABI,
		},
		submitted: make(chan struct{}),
	}
	r.pending = spawn(ctx, func(ctx context.Context) (*types.Receipt, error) {
		hash, err := t.SendTransaction(ctx, req)
		if err != nil {
			return nil, transportError("eth_sendTransaction", err)
		}
		r.hash = hash
		close(r.submitted)

		receipt, err := t.WaitReceipt(ctx, hash)
		if err != nil {
			return nil, transportError("eth_getTransactionReceipt", err)
		}
		return receipt, nil
	})
	return r
}

// Done is closed once the deployment is mined or has failed.
func (r *DeployResolver) Done() <-chan struct{} {
	return r.pending.done
}

// TransactionHash returns the deployment transaction hash once the node has
// accepted it.
func (r *DeployResolver) TransactionHash() (common.Hash, bool) {
	select {
	case <-r.submitted:
		return r.hash, true
	default:
		return common.Hash{}, false
	}
}

// Poll returns the result if it is ready, without blocking.
func (r *DeployResolver) Poll() (inst *Instance, ready bool, err error) {
	r.mustBePending()
	if !r.pending.ready() {
		return nil, false, nil
	}
	inst, err = r.complete()
	return inst, true, err
}

// Wait blocks until the deployment is confirmed or ctx ends. When ctx ends
// first its error is returned and the resolver stays pending.
func (r *DeployResolver) Wait(ctx context.Context) (*Instance, error) {
	r.mustBePending()
	if _, err := r.pending.wait(ctx); err != nil {
		return nil, err
	}
	return r.complete()
}

// Cancel stops waiting for the deployment. A transaction already accepted by
// the node is not withdrawn.
func (r *DeployResolver) Cancel() {
	r.pending.cancel()
	r.args = nil
}

func (r *DeployResolver) mustBePending() {
	if r.args == nil {
		panic("contract: DeployResolver used after completion")
	}
}

func (r *DeployResolver) complete() (*Instance, error) {
	r.mustBePending()
	args := *r.args
	r.args = nil

	receipt, err := r.pending.result()
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Artifact = args.name
		}
		return nil, err
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return nil, &Error{
			Kind:     KindTransport,
			Op:       "deploy",
			Artifact: args.name,
			Err:      fmt.Errorf("%w: %s", ErrTransactionReverted, r.hash.Hex()),
		}
	}
	if receipt.ContractAddress == (common.Address{}) {
		return nil, &Error{
			Kind:     KindTransport,
			Op:       "deploy",
			Artifact: args.name,
			Err:      fmt.Errorf("%w: %s", ErrNoContractAddress, r.hash.Hex()),
		}
	}

	return &Instance{
		transport: args.transport,
		abi:       args.abi,
		address:   receipt.ContractAddress,
		txHash:    r.hash,
	}, nil
}

package contract

import "context"

// DeployedResolver resolves the instance of an artifact already deployed on
// the network the transport is connected to.
//
// The resolver is single-owner: it may be polled or waited on any number of
// times while pending, but it hands out exactly one result. Driving it again
// after that panics. It is not safe for concurrent use.
type DeployedResolver struct {
	args    *deployedArgs
	network *NetworkIDRequest
}

type deployedArgs struct {
	transport Transport
	artifact  Artifact
}

// Deployed starts resolving artifact against the network t is connected to.
func Deployed(ctx context.Context, t Transport, artifact Artifact) *DeployedResolver {
	return &DeployedResolver{
		args:    &deployedArgs{transport: t, artifact: artifact},
		network: RequestNetworkID(ctx, t),
	}
}

// Done is closed once the result is ready to be taken.
func (r *DeployedResolver) Done() <-chan struct{} {
	return r.network.Done()
}

// Poll returns the result if it is ready, without blocking. ready is false
// while the network identifier is still outstanding.
func (r *DeployedResolver) Poll() (inst *Instance, ready bool, err error) {
	r.mustBePending()
	if !r.network.f.ready() {
		return nil, false, nil
	}
	inst, err = r.complete()
	return inst, true, err
}

// Wait blocks until the instance is resolved or ctx ends. When ctx ends first
// its error is returned and the resolver stays pending.
func (r *DeployedResolver) Wait(ctx context.Context) (*Instance, error) {
	r.mustBePending()
	if _, err := r.network.f.wait(ctx); err != nil {
		return nil, err
	}
	return r.complete()
}

// Cancel abandons the resolution and releases the artifact and transport.
// The resolver must not be used afterwards.
func (r *DeployedResolver) Cancel() {
	r.network.Cancel()
	r.args = nil
}

func (r *DeployedResolver) mustBePending() {
	if r.args == nil {
		panic("contract: DeployedResolver used after completion")
	}
}

func (r *DeployedResolver) take() deployedArgs {
	r.mustBePending()
	args := *r.args
	r.args = nil
	return args
}

func (r *DeployedResolver) complete() (*Instance, error) {
	args := r.take()

	networkID, err := r.network.f.result()
	if err != nil {
		return nil, err
	}

	network, ok := args.artifact.Networks[networkID]
	if !ok {
		return nil, &Error{
			Kind:     KindNotFound,
			Artifact: args.artifact.ContractName,
			Network:  networkID,
		}
	}

	return &Instance{
		transport: args.transport,
		abi:       args.artifact.ABI,
		address:   network.Address,
		txHash:    network.TransactionHash,
		networkID: networkID,
	}, nil
}

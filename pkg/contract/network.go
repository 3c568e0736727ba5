package contract

import "context"

// NetworkIDRequest is an in-flight request for the identifier of the network
// a transport is connected to. Exactly one request is issued; there are no
// retries.
type NetworkIDRequest struct {
	f *future[string]
}

// RequestNetworkID starts a net_version request on t.
func RequestNetworkID(ctx context.Context, t Transport) *NetworkIDRequest {
	return &NetworkIDRequest{
		f: spawn(ctx, func(ctx context.Context) (string, error) {
			id, err := t.NetworkID(ctx)
			if err != nil {
				return "", transportError("net_version", err)
			}
			return id, nil
		}),
	}
}

// Done is closed once the transport has answered.
func (r *NetworkIDRequest) Done() <-chan struct{} {
	return r.f.done
}

// Wait blocks until the network identifier is known or ctx ends. Ending ctx
// only stops the wait; the request stays in flight.
func (r *NetworkIDRequest) Wait(ctx context.Context) (string, error) {
	if _, err := r.f.wait(ctx); err != nil {
		return "", err
	}
	return r.f.result()
}

// Cancel abandons the request.
func (r *NetworkIDRequest) Cancel() {
	r.f.cancel()
}

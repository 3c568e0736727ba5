package contract

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// DeployBuilder configures the deployment of a new contract instance. Setters
// modify the builder in place and return it for chaining. Send consumes it.
type DeployBuilder struct {
	transport Transport
	artifact  Artifact
	params    []byte
	libs      Libraries
	tx        TransactionRequest
	sent      bool
}

// NewDeployBuilder prepares the deployment of artifact with the given
// constructor arguments. Arguments that do not match the constructor
// signature fail here, before anything is sent to the node.
func NewDeployBuilder(t Transport, artifact Artifact, args ...any) (*DeployBuilder, error) {
	params, err := artifact.ABI.Pack("", args...)
	if err != nil {
		return nil, &Error{Kind: KindABIMismatch, Artifact: artifact.ContractName, Err: err}
	}

	return &DeployBuilder{
		transport: t,
		artifact:  artifact,
		params:    params,
		libs:      make(Libraries),
	}, nil
}

// Library links the library called name to address.
func (b *DeployBuilder) Library(name string, address common.Address) *DeployBuilder {
	b.mustBeOpen()
	b.libs[name] = address
	return b
}

// Libraries links every library in libs, overriding previous entries.
func (b *DeployBuilder) Libraries(libs Libraries) *DeployBuilder {
	b.mustBeOpen()
	for name, address := range libs {
		b.libs[name] = address
	}
	return b
}

// Value sets the amount of wei sent along with the deployment.
func (b *DeployBuilder) Value(value *big.Int) *DeployBuilder {
	b.mustBeOpen()
	b.tx.Value = value
	return b
}

// Gas sets the gas limit. Zero lets the node estimate it.
func (b *DeployBuilder) Gas(gas uint64) *DeployBuilder {
	b.mustBeOpen()
	b.tx.Gas = gas
	return b
}

// From sets the sending account.
func (b *DeployBuilder) From(from common.Address) *DeployBuilder {
	b.mustBeOpen()
	b.tx.From = &from
	return b
}

// Data returns the transaction input: the linked creation code followed by
// the encoded constructor arguments.
func (b *DeployBuilder) Data() ([]byte, error) {
	b.mustBeOpen()

	code := Link(b.artifact.Bytecode, b.libs)
	if placeholder, ok := FindPlaceholder(code); ok {
		return nil, &Error{
			Kind:        KindUnresolvedLibrary,
			Artifact:    b.artifact.ContractName,
			Placeholder: placeholder,
		}
	}

	bytecode, err := hex.DecodeString(strings.TrimPrefix(code, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode for %s: %w", b.artifact.ContractName, err)
	}
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("artifact %s has no creation bytecode", b.artifact.ContractName)
	}

	return append(bytecode, b.params...), nil
}

// Request returns the transaction Send would broadcast.
func (b *DeployBuilder) Request() (TransactionRequest, error) {
	data, err := b.Data()
	if err != nil {
		return TransactionRequest{}, err
	}
	req := b.tx
	req.Data = data
	return req, nil
}

// Send broadcasts the deployment and returns the resolver for the new
// instance. Bytecode that still holds a library placeholder is rejected
// without contacting the node, and the builder stays usable.
func (b *DeployBuilder) Send(ctx context.Context) (*DeployResolver, error) {
	req, err := b.Request()
	if err != nil {
		return nil, err
	}
	b.sent = true

	r := deploy(ctx, b.transport, b.artifact, req)
	b.transport = nil
	b.artifact = Artifact{}
	return r, nil
}

func (b *DeployBuilder) mustBeOpen() {
	if b.sent {
		panic("contract: DeployBuilder used after Send")
	}
}

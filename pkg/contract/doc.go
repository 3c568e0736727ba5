// Package contract acquires handles to contracts on an EVM network, either by
// looking up the deployment recorded in a compiled artifact for the network
// the transport is connected to, or by deploying the artifact's bytecode.
package contract

/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

import "context"

// Network represents a Fabric channel, accessed through the Gateway that created it.
type Network struct {
	gateway *Gateway
	name    string
}

// Name of the Fabric channel.
func (network *Network) Name() string {
	return network.name
}

// GetGateway returns the Gateway from which this Network was obtained.
func (network *Network) GetGateway() *Gateway {
	return network.gateway
}

// GetContract returns a Contract representing the default smart contract for the named chaincode.
func (network *Network) GetContract(chaincodeName string) *Contract {
	return network.GetContractWithName(chaincodeName, "")
}

// GetContractWithName returns a Contract representing a named smart contract within a chaincode.
func (network *Network) GetContractWithName(chaincodeName string, contractName string) *Contract {
	return &Contract{
		network:       network,
		chaincodeName: chaincodeName,
		contractName:  contractName,
	}
}

// NewChaincodeEventsRequest creates a request to read events emitted by the named chaincode. The request is signed
// if the Gateway has a sign implementation.
func (network *Network) NewChaincodeEventsRequest(chaincodeName string, options ...ChaincodeEventsOption) (*ChaincodeEventsRequest, error) {
	gw := network.gateway
	return newChaincodeEventsRequest(gw.client, gw.signingID, network.name, chaincodeName, options...)
}

// ChaincodeEvents opens a stream of events emitted by the named chaincode.
func (network *Network) ChaincodeEvents(ctx context.Context, chaincodeName string, options ...ChaincodeEventsOption) (*ChaincodeEvents, error) {
	request, err := network.NewChaincodeEventsRequest(chaincodeName, options...)
	if err != nil {
		return nil, err
	}

	return request.Events(ctx)
}

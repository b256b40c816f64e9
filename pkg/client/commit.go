/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/bestbeforetoday/fabric-gateway-client/internal/proposal"
	"github.com/bestbeforetoday/fabric-gateway-client/pkg/identity"
	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"github.com/hyperledger/fabric-protos-go-apiv2/peer"
	"google.golang.org/protobuf/proto"
)

// Status of a committed transaction.
type Status struct {
	TransactionID string
	Code          peer.TxValidationCode
	Successful    bool
	BlockNumber   uint64
}

// Commit provides access to the commit status of a submitted transaction. Status may be requested any number of
// times once the commit is signed.
type Commit struct {
	client        *gatewayClient
	signingID     *identity.SigningIdentity
	channelID     string
	transactionID string
	signedRequest *gateway.SignedCommitStatusRequest
	unsignedBytes []byte
	state         signingState
}

func newCommit(client *gatewayClient, signingID *identity.SigningIdentity, channelID string, transactionID string) (*Commit, error) {
	creator, err := signingID.Creator()
	if err != nil {
		return nil, err
	}

	request := &gateway.CommitStatusRequest{
		TransactionId: transactionID,
		ChannelId:     channelID,
		Identity:      creator,
	}
	requestBytes, err := proposal.Marshal(request)
	if err != nil {
		return nil, err
	}

	signedRequest := &gateway.SignedCommitStatusRequest{
		Request: requestBytes,
	}
	unsignedBytes, err := proposal.Marshal(signedRequest)
	if err != nil {
		return nil, err
	}

	commit := &Commit{
		client:        client,
		signingID:     signingID,
		channelID:     channelID,
		transactionID: transactionID,
		signedRequest: signedRequest,
		unsignedBytes: unsignedBytes,
	}

	if signingID.CanSign() {
		if err := commit.sign(); err != nil {
			return nil, err
		}
	}

	return commit, nil
}

// NewSignedCommit recreates a commit from its unsigned serialized bytes, obtained from Commit.Bytes, and a signature
// generated for its digest.
func (gw *Gateway) NewSignedCommit(bytes []byte, signature []byte) (*Commit, error) {
	if len(signature) == 0 {
		return nil, errors.New("no signature supplied")
	}

	signedRequest := &gateway.SignedCommitStatusRequest{}
	if err := proto.Unmarshal(bytes, signedRequest); err != nil {
		return nil, fmt.Errorf("failed to deserialize signed commit status request: %w", err)
	}

	request := &gateway.CommitStatusRequest{}
	if err := proto.Unmarshal(signedRequest.GetRequest(), request); err != nil {
		return nil, fmt.Errorf("failed to deserialize commit status request: %w", err)
	}

	signedRequest.Signature = nil
	commit := &Commit{
		client:        gw.client,
		signingID:     gw.signingID,
		channelID:     request.GetChannelId(),
		transactionID: request.GetTransactionId(),
		signedRequest: signedRequest,
		unsignedBytes: append([]byte(nil), bytes...),
	}
	if err := commit.setSignature(signature); err != nil {
		return nil, err
	}

	return commit, nil
}

// TransactionID of the submitted transaction.
func (c *Commit) TransactionID() string {
	return c.transactionID
}

// Bytes of the serialized commit status request, excluding any signature. These bytes can be passed to
// Gateway.NewSignedCommit together with a signature to recreate the commit.
func (c *Commit) Bytes() []byte {
	return append([]byte(nil), c.unsignedBytes...)
}

// Digest of the commit status request. This is used to generate a digital signature.
func (c *Commit) Digest() []byte {
	return c.signingID.Digest(c.signedRequest.GetRequest())
}

// Status of the committed transaction. Blocks until the transaction is committed or the context is done.
func (c *Commit) Status(ctx context.Context) (*Status, error) {
	if err := c.state.require("commit status"); err != nil {
		return nil, err
	}

	response, err := c.client.CommitStatus(ctx, c.channelID, c.transactionID, c.signedRequest)
	if err != nil {
		return nil, err
	}

	return &Status{
		TransactionID: c.transactionID,
		Code:          response.GetResult(),
		Successful:    response.GetResult() == peer.TxValidationCode_VALID,
		BlockNumber:   response.GetBlockNumber(),
	}, nil
}

func (c *Commit) sign() error {
	signature, err := c.signingID.Sign(c.Digest())
	if err != nil {
		return err
	}

	return c.setSignature(signature)
}

func (c *Commit) setSignature(signature []byte) error {
	if err := c.state.signed(); err != nil {
		return err
	}

	c.signedRequest.Signature = signature
	return nil
}

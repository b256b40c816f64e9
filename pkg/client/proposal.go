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
	"google.golang.org/protobuf/proto"
)

// Proposal represents a transaction proposal that can be evaluated or endorsed. A Proposal can be sent only once,
// and is not safe for concurrent use.
type Proposal struct {
	client              *gatewayClient
	signingID           *identity.SigningIdentity
	channelID           string
	proposedTransaction *gateway.ProposedTransaction
	unsignedBytes       []byte
	state               signingState
}

func newProposal(
	client *gatewayClient,
	signingID *identity.SigningIdentity,
	channelID string,
	proposedTransaction *gateway.ProposedTransaction,
) (*Proposal, error) {
	unsignedBytes, err := proposal.Marshal(proposedTransaction)
	if err != nil {
		return nil, err
	}

	result := &Proposal{
		client:              client,
		signingID:           signingID,
		channelID:           channelID,
		proposedTransaction: proposedTransaction,
		unsignedBytes:       unsignedBytes,
	}

	if signingID.CanSign() {
		if err := result.sign(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// NewSignedProposal recreates a proposal from its unsigned serialized bytes, obtained from Proposal.Bytes, and a
// signature generated for its digest. The proposal bytes are used exactly as supplied.
func (gw *Gateway) NewSignedProposal(bytes []byte, signature []byte) (*Proposal, error) {
	if len(signature) == 0 {
		return nil, errors.New("no signature supplied")
	}

	proposedTransaction := &gateway.ProposedTransaction{}
	if err := proto.Unmarshal(bytes, proposedTransaction); err != nil {
		return nil, fmt.Errorf("failed to deserialize proposal: %w", err)
	}
	if proposedTransaction.GetProposal() == nil {
		return nil, errors.New("proposal bytes contain no proposal")
	}

	channelHeader, err := proposal.ChannelHeader(proposedTransaction.GetProposal().GetProposalBytes())
	if err != nil {
		return nil, err
	}
	if channelHeader.GetTxId() != proposedTransaction.GetTransactionId() {
		return nil, fmt.Errorf("transaction ID %s does not match proposal channel header transaction ID %s",
			proposedTransaction.GetTransactionId(), channelHeader.GetTxId())
	}

	proposedTransaction.Proposal.Signature = nil
	result := &Proposal{
		client:              gw.client,
		signingID:           gw.signingID,
		channelID:           channelHeader.GetChannelId(),
		proposedTransaction: proposedTransaction,
		unsignedBytes:       append([]byte(nil), bytes...),
	}
	if err := result.setSignature(signature); err != nil {
		return nil, err
	}

	return result, nil
}

// TransactionID returns the transaction ID for the proposal.
func (p *Proposal) TransactionID() string {
	return p.proposedTransaction.GetTransactionId()
}

// EndorsingOrganizations returns the organizations, identified by MSP ID, that were requested to endorse the
// proposal. Empty if no restriction was requested.
func (p *Proposal) EndorsingOrganizations() []string {
	return append([]string(nil), p.proposedTransaction.GetEndorsingOrganizations()...)
}

// Bytes of the serialized proposal, excluding any signature. These bytes can be passed to Gateway.NewSignedProposal
// together with a signature to recreate the proposal.
func (p *Proposal) Bytes() []byte {
	return append([]byte(nil), p.unsignedBytes...)
}

// Digest of the proposal. This is used to generate a digital signature.
func (p *Proposal) Digest() []byte {
	return p.signingID.Digest(p.proposedTransaction.GetProposal().GetProposalBytes())
}

// Evaluate the proposal and return the transaction result. The proposal is evaluated on a single peer, its result
// is not submitted to the orderer and does not update the ledger.
func (p *Proposal) Evaluate(ctx context.Context) ([]byte, error) {
	request := &gateway.EvaluateRequest{
		TransactionId:       p.TransactionID(),
		ChannelId:           p.channelID,
		ProposedTransaction: p.proposedTransaction.GetProposal(),
		TargetOrganizations: p.proposedTransaction.GetEndorsingOrganizations(),
	}

	if err := p.state.send("evaluate"); err != nil {
		return nil, err
	}

	response, err := p.client.Evaluate(ctx, request)
	if err != nil {
		return nil, err
	}

	return response.GetResult().GetPayload(), nil
}

// Endorse the proposal and obtain an endorsed transaction that can be submitted to the orderer.
func (p *Proposal) Endorse(ctx context.Context) (*Transaction, error) {
	request := &gateway.EndorseRequest{
		TransactionId:          p.TransactionID(),
		ChannelId:              p.channelID,
		ProposedTransaction:    p.proposedTransaction.GetProposal(),
		EndorsingOrganizations: p.proposedTransaction.GetEndorsingOrganizations(),
	}

	if err := p.state.send("endorse"); err != nil {
		return nil, err
	}

	response, err := p.client.Endorse(ctx, request)
	if err != nil {
		return nil, err
	}

	preparedTransaction := &gateway.PreparedTransaction{
		TransactionId: p.TransactionID(),
		Envelope:      response.GetPreparedTransaction(),
	}
	return newTransaction(p.client, p.signingID, p.channelID, preparedTransaction)
}

func (p *Proposal) sign() error {
	signature, err := p.signingID.Sign(p.Digest())
	if err != nil {
		return err
	}

	return p.setSignature(signature)
}

func (p *Proposal) setSignature(signature []byte) error {
	if err := p.state.signed(); err != nil {
		return err
	}

	p.proposedTransaction.Proposal.Signature = signature
	return nil
}

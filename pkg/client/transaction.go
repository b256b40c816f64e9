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
	"github.com/hyperledger/fabric-protos-go-apiv2/common"
	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"github.com/hyperledger/fabric-protos-go-apiv2/peer"
	"google.golang.org/protobuf/proto"
)

// Transaction represents an endorsed transaction that can be submitted to the orderer for commit to the ledger. A
// Transaction can be submitted only once, and is not safe for concurrent use.
type Transaction struct {
	client              *gatewayClient
	signingID           *identity.SigningIdentity
	channelID           string
	preparedTransaction *gateway.PreparedTransaction
	unsignedBytes       []byte
	result              []byte
	state               signingState
}

func newTransaction(
	client *gatewayClient,
	signingID *identity.SigningIdentity,
	channelID string,
	preparedTransaction *gateway.PreparedTransaction,
) (*Transaction, error) {
	envelope := preparedTransaction.GetEnvelope()
	if envelope == nil {
		return nil, errors.New("endorse response contains no prepared transaction")
	}
	envelope.Signature = nil

	unsignedBytes, err := proposal.Marshal(preparedTransaction)
	if err != nil {
		return nil, err
	}

	result, err := parseResult(envelope)
	if err != nil {
		return nil, err
	}

	transaction := &Transaction{
		client:              client,
		signingID:           signingID,
		channelID:           channelID,
		preparedTransaction: preparedTransaction,
		unsignedBytes:       unsignedBytes,
		result:              result,
	}

	if signingID.CanSign() {
		if err := transaction.sign(); err != nil {
			return nil, err
		}
	}

	return transaction, nil
}

// NewSignedTransaction recreates a transaction from its unsigned serialized bytes, obtained from Transaction.Bytes,
// and a signature generated for its digest.
func (gw *Gateway) NewSignedTransaction(bytes []byte, signature []byte) (*Transaction, error) {
	if len(signature) == 0 {
		return nil, errors.New("no signature supplied")
	}

	preparedTransaction := &gateway.PreparedTransaction{}
	if err := proto.Unmarshal(bytes, preparedTransaction); err != nil {
		return nil, fmt.Errorf("failed to deserialize transaction: %w", err)
	}

	envelope := preparedTransaction.GetEnvelope()
	if envelope == nil {
		return nil, errors.New("transaction bytes contain no envelope")
	}

	channelHeader, err := envelopeChannelHeader(envelope)
	if err != nil {
		return nil, err
	}
	if channelHeader.GetTxId() != preparedTransaction.GetTransactionId() {
		return nil, fmt.Errorf("transaction ID %s does not match envelope channel header transaction ID %s",
			preparedTransaction.GetTransactionId(), channelHeader.GetTxId())
	}

	result, err := parseResult(envelope)
	if err != nil {
		return nil, err
	}

	envelope.Signature = nil
	transaction := &Transaction{
		client:              gw.client,
		signingID:           gw.signingID,
		channelID:           channelHeader.GetChannelId(),
		preparedTransaction: preparedTransaction,
		unsignedBytes:       append([]byte(nil), bytes...),
		result:              result,
	}
	if err := transaction.setSignature(signature); err != nil {
		return nil, err
	}

	return transaction, nil
}

// TransactionID returns the transaction ID.
func (t *Transaction) TransactionID() string {
	return t.preparedTransaction.GetTransactionId()
}

// Result of the transaction, obtained from the endorsing peers when the proposal was endorsed.
func (t *Transaction) Result() []byte {
	return t.result
}

// Bytes of the serialized transaction, excluding any signature. These bytes can be passed to
// Gateway.NewSignedTransaction together with a signature to recreate the transaction.
func (t *Transaction) Bytes() []byte {
	return append([]byte(nil), t.unsignedBytes...)
}

// Digest of the transaction. This is used to generate a digital signature.
func (t *Transaction) Digest() []byte {
	return t.signingID.Digest(t.preparedTransaction.GetEnvelope().GetPayload())
}

// Submit the transaction to the orderer for commit to the ledger. The returned Commit is used to obtain the commit
// status of the transaction.
func (t *Transaction) Submit(ctx context.Context) (*Commit, error) {
	request := &gateway.SubmitRequest{
		TransactionId:       t.TransactionID(),
		ChannelId:           t.channelID,
		PreparedTransaction: t.preparedTransaction.GetEnvelope(),
	}

	if err := t.state.send("submit"); err != nil {
		return nil, err
	}

	if _, err := t.client.Submit(ctx, request); err != nil {
		return nil, err
	}

	return newCommit(t.client, t.signingID, t.channelID, t.TransactionID())
}

func (t *Transaction) sign() error {
	signature, err := t.signingID.Sign(t.Digest())
	if err != nil {
		return err
	}

	return t.setSignature(signature)
}

func (t *Transaction) setSignature(signature []byte) error {
	if err := t.state.signed(); err != nil {
		return err
	}

	t.preparedTransaction.Envelope.Signature = signature
	return nil
}

func envelopeChannelHeader(envelope *common.Envelope) (*common.ChannelHeader, error) {
	payload := &common.Payload{}
	if err := proto.Unmarshal(envelope.GetPayload(), payload); err != nil {
		return nil, fmt.Errorf("failed to deserialize envelope payload: %w", err)
	}

	channelHeader := &common.ChannelHeader{}
	if err := proto.Unmarshal(payload.GetHeader().GetChannelHeader(), channelHeader); err != nil {
		return nil, fmt.Errorf("failed to deserialize channel header: %w", err)
	}

	return channelHeader, nil
}

// parseResult extracts the chaincode response payload from the first action of a transaction envelope.
func parseResult(envelope *common.Envelope) ([]byte, error) {
	payload := &common.Payload{}
	if err := proto.Unmarshal(envelope.GetPayload(), payload); err != nil {
		return nil, fmt.Errorf("failed to deserialize envelope payload: %w", err)
	}

	transaction := &peer.Transaction{}
	if err := proto.Unmarshal(payload.GetData(), transaction); err != nil {
		return nil, fmt.Errorf("failed to deserialize transaction: %w", err)
	}

	actions := transaction.GetActions()
	if len(actions) == 0 {
		return nil, errors.New("transaction contains no actions")
	}

	actionPayload := &peer.ChaincodeActionPayload{}
	if err := proto.Unmarshal(actions[0].GetPayload(), actionPayload); err != nil {
		return nil, fmt.Errorf("failed to deserialize chaincode action payload: %w", err)
	}

	responsePayload := &peer.ProposalResponsePayload{}
	if err := proto.Unmarshal(actionPayload.GetAction().GetProposalResponsePayload(), responsePayload); err != nil {
		return nil, fmt.Errorf("failed to deserialize proposal response payload: %w", err)
	}

	chaincodeAction := &peer.ChaincodeAction{}
	if err := proto.Unmarshal(responsePayload.GetExtension(), chaincodeAction); err != nil {
		return nil, fmt.Errorf("failed to deserialize chaincode action: %w", err)
	}

	return chaincodeAction.GetResponse().GetPayload(), nil
}

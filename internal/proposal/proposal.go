/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package proposal

import (
	"errors"
	"fmt"

	"github.com/bestbeforetoday/fabric-gateway-client/pkg/identity"
	"github.com/hyperledger/fabric-protos-go-apiv2/common"
	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"github.com/hyperledger/fabric-protos-go-apiv2/peer"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var marshalOptions = proto.MarshalOptions{Deterministic: true}

// Marshal serializes a message deterministically so that identical messages always produce identical bytes.
func Marshal(m proto.Message) ([]byte, error) {
	return marshalOptions.Marshal(m)
}

// TransientEntry is a single transient data key and value.
type TransientEntry struct {
	Key   string
	Value []byte
}

// Request describes a chaincode transaction invocation.
type Request struct {
	ChannelID              string
	ChaincodeName          string
	ContractName           string
	TransactionName        string
	Arguments              [][]byte
	Transient              []TransientEntry
	EndorsingOrganizations []string
}

// Validate checks that the request can be built into a proposal.
func (r *Request) Validate() error {
	if r.ChannelID == "" {
		return errors.New("no channel name supplied")
	}
	if r.ChaincodeName == "" {
		return errors.New("no chaincode name supplied")
	}
	if r.TransactionName == "" {
		return errors.New("no transaction name supplied")
	}

	keys := make(map[string]struct{}, len(r.Transient))
	for _, entry := range r.Transient {
		if _, exists := keys[entry.Key]; exists {
			return fmt.Errorf("duplicate transient data key: %s", entry.Key)
		}
		keys[entry.Key] = struct{}{}
	}

	return nil
}

// QualifiedTransactionName is the first chaincode argument, which identifies the transaction function to invoke.
func (r *Request) QualifiedTransactionName() string {
	if r.ContractName == "" {
		return r.TransactionName
	}
	return r.ContractName + ":" + r.TransactionName
}

// ChaincodeArguments returns the complete chaincode argument list, starting with the transaction name.
func (r *Request) ChaincodeArguments() [][]byte {
	args := make([][]byte, 0, len(r.Arguments)+1)
	args = append(args, []byte(r.QualifiedTransactionName()))
	return append(args, r.Arguments...)
}

// TransientMap returns transient data as a map. Nil if there is no transient data.
func (r *Request) TransientMap() map[string][]byte {
	if len(r.Transient) == 0 {
		return nil
	}

	result := make(map[string][]byte, len(r.Transient))
	for _, entry := range r.Transient {
		result[entry.Key] = entry.Value
	}
	return result
}

// New builds an unsigned proposed transaction from a validated request. Endorsing organizations are attached to
// the outer proposed transaction and are not covered by the proposal signature.
func New(signingID *identity.SigningIdentity, request *Request) (*gateway.ProposedTransaction, error) {
	transactionCtx, err := newTransactionContext(signingID)
	if err != nil {
		return nil, err
	}

	proposal, err := newProposal(transactionCtx, request)
	if err != nil {
		return nil, err
	}

	proposalBytes, err := Marshal(proposal)
	if err != nil {
		return nil, err
	}

	return &gateway.ProposedTransaction{
		TransactionId:          transactionCtx.TransactionID,
		Proposal:               &peer.SignedProposal{ProposalBytes: proposalBytes},
		EndorsingOrganizations: uniqueOrganizations(request.EndorsingOrganizations),
	}, nil
}

// uniqueOrganizations removes duplicate MSP IDs, keeping the first occurrence of each. Nil if there are none.
func uniqueOrganizations(mspIDs []string) []string {
	var result []string
	seen := make(map[string]struct{}, len(mspIDs))
	for _, mspID := range mspIDs {
		if _, exists := seen[mspID]; exists {
			continue
		}
		seen[mspID] = struct{}{}
		result = append(result, mspID)
	}
	return result
}

func newProposal(transactionCtx *transactionContext, request *Request) (*peer.Proposal, error) {
	headerBytes, err := newHeaderBytes(transactionCtx, request)
	if err != nil {
		return nil, err
	}

	payloadBytes, err := newPayloadBytes(request)
	if err != nil {
		return nil, err
	}

	return &peer.Proposal{
		Header:  headerBytes,
		Payload: payloadBytes,
	}, nil
}

func newHeaderBytes(transactionCtx *transactionContext, request *Request) ([]byte, error) {
	channelHeaderBytes, err := newChannelHeaderBytes(transactionCtx, request)
	if err != nil {
		return nil, err
	}

	signatureHeaderBytes, err := Marshal(transactionCtx.SignatureHeader)
	if err != nil {
		return nil, err
	}

	header := &common.Header{
		ChannelHeader:   channelHeaderBytes,
		SignatureHeader: signatureHeaderBytes,
	}
	return Marshal(header)
}

func newChannelHeaderBytes(transactionCtx *transactionContext, request *Request) ([]byte, error) {
	extension := &peer.ChaincodeHeaderExtension{
		ChaincodeId: &peer.ChaincodeID{
			Name: request.ChaincodeName,
		},
	}

	extensionBytes, err := Marshal(extension)
	if err != nil {
		return nil, err
	}

	channelHeader := &common.ChannelHeader{
		Type:      int32(common.HeaderType_ENDORSER_TRANSACTION),
		Timestamp: timestamppb.Now(),
		ChannelId: request.ChannelID,
		TxId:      transactionCtx.TransactionID,
		Epoch:     0,
		Extension: extensionBytes,
	}
	return Marshal(channelHeader)
}

func newPayloadBytes(request *Request) ([]byte, error) {
	invocationSpec := &peer.ChaincodeInvocationSpec{
		ChaincodeSpec: &peer.ChaincodeSpec{
			ChaincodeId: &peer.ChaincodeID{
				Name: request.ChaincodeName,
			},
			Input: &peer.ChaincodeInput{
				Args: request.ChaincodeArguments(),
			},
		},
	}

	invocationSpecBytes, err := Marshal(invocationSpec)
	if err != nil {
		return nil, err
	}

	chaincodeProposalPayload := &peer.ChaincodeProposalPayload{
		Input:        invocationSpecBytes,
		TransientMap: request.TransientMap(),
	}
	return Marshal(chaincodeProposalPayload)
}

// ChannelHeader extracts the channel header from serialized proposal bytes.
func ChannelHeader(proposalBytes []byte) (*common.ChannelHeader, error) {
	proposal := &peer.Proposal{}
	if err := proto.Unmarshal(proposalBytes, proposal); err != nil {
		return nil, fmt.Errorf("failed to deserialize proposal: %w", err)
	}

	header := &common.Header{}
	if err := proto.Unmarshal(proposal.GetHeader(), header); err != nil {
		return nil, fmt.Errorf("failed to deserialize proposal header: %w", err)
	}

	channelHeader := &common.ChannelHeader{}
	if err := proto.Unmarshal(header.GetChannelHeader(), channelHeader); err != nil {
		return nil, fmt.Errorf("failed to deserialize channel header: %w", err)
	}

	return channelHeader, nil
}

/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"context"

	"github.com/bestbeforetoday/fabric-gateway-client/internal/common"
	"github.com/bestbeforetoday/fabric-gateway-client/internal/proposal"
)

// Contract represents a smart contract within a chaincode deployed to a Network.
type Contract struct {
	network       *Network
	chaincodeName string
	contractName  string
}

// ProposalOption configures a transaction proposal.
type ProposalOption = func(*proposal.Request) error

// WithArguments appends string arguments to the transaction invocation.
func WithArguments(args ...string) ProposalOption {
	return func(request *proposal.Request) error {
		for _, arg := range args {
			request.Arguments = append(request.Arguments, []byte(arg))
		}
		return nil
	}
}

// WithBytesArguments appends byte arguments to the transaction invocation.
func WithBytesArguments(args ...[]byte) ProposalOption {
	return func(request *proposal.Request) error {
		request.Arguments = append(request.Arguments, args...)
		return nil
	}
}

// WithTransient adds private data that is passed to the transaction function but not recorded on the ledger. A key
// may be supplied only once across all transient data options.
func WithTransient(transient map[string][]byte) ProposalOption {
	return func(request *proposal.Request) error {
		for key, value := range transient {
			request.Transient = append(request.Transient, proposal.TransientEntry{Key: key, Value: value})
		}
		return nil
	}
}

// WithEndorsingOrganizations restricts endorsement to peers of the specified organizations, identified by MSP ID.
// The restriction is a routing instruction to the Gateway service and is not signed. Duplicate MSP IDs are sent
// only once.
func WithEndorsingOrganizations(mspIDs ...string) ProposalOption {
	return func(request *proposal.Request) error {
		request.EndorsingOrganizations = append(request.EndorsingOrganizations, mspIDs...)
		return nil
	}
}

// ChaincodeName of the chaincode that contains this smart contract.
func (contract *Contract) ChaincodeName() string {
	return contract.chaincodeName
}

// ContractName of this smart contract, or an empty string for the default contract.
func (contract *Contract) ContractName() string {
	return contract.contractName
}

// NewProposal creates a proposal for a transaction function within this smart contract. If the Gateway has a sign
// implementation the proposal is signed and ready to send; otherwise it must be signed offline and recreated using
// NewSignedProposal.
func (contract *Contract) NewProposal(transactionName string, options ...ProposalOption) (*Proposal, error) {
	request := &proposal.Request{
		ChannelID:       contract.network.name,
		ChaincodeName:   contract.chaincodeName,
		ContractName:    contract.contractName,
		TransactionName: transactionName,
	}

	if err := common.ApplyOptions(request, options...); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, &ConfigurationError{err: err}
	}

	return contract.network.gateway.newProposal(request)
}

// NewSignedProposal recreates a proposal from its unsigned serialized bytes and an offline signature.
func (contract *Contract) NewSignedProposal(bytes []byte, signature []byte) (*Proposal, error) {
	return contract.network.gateway.NewSignedProposal(bytes, signature)
}

// EvaluateTransaction evaluates a transaction function with string arguments and returns its result.
func (contract *Contract) EvaluateTransaction(ctx context.Context, name string, args ...string) ([]byte, error) {
	return contract.Evaluate(ctx, name, WithArguments(args...))
}

// Evaluate a transaction function and return its result. The ledger is not updated.
func (contract *Contract) Evaluate(ctx context.Context, transactionName string, options ...ProposalOption) ([]byte, error) {
	txProposal, err := contract.NewProposal(transactionName, options...)
	if err != nil {
		return nil, err
	}

	return txProposal.Evaluate(ctx)
}

// SubmitTransaction submits a transaction function with string arguments, waits for it to be committed to the ledger,
// and returns its result.
func (contract *Contract) SubmitTransaction(ctx context.Context, name string, args ...string) ([]byte, error) {
	return contract.Submit(ctx, name, WithArguments(args...))
}

// Submit a transaction function to the ledger and wait for it to be committed. A CommitError is returned if the
// transaction commits with a validation code other than VALID.
func (contract *Contract) Submit(ctx context.Context, transactionName string, options ...ProposalOption) ([]byte, error) {
	txProposal, err := contract.NewProposal(transactionName, options...)
	if err != nil {
		return nil, err
	}

	transaction, err := txProposal.Endorse(ctx)
	if err != nil {
		return nil, err
	}

	commit, err := transaction.Submit(ctx)
	if err != nil {
		return nil, err
	}

	status, err := commit.Status(ctx)
	if err != nil {
		return nil, err
	}
	if !status.Successful {
		return nil, &CommitError{
			TransactionID: status.TransactionID,
			Code:          status.Code,
		}
	}

	return transaction.Result(), nil
}

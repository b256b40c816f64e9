/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"fmt"

	"github.com/hyperledger/fabric-protos-go-apiv2/peer"
)

// ConfigurationError is returned when a transaction request is invalid. It is detected before any network
// interaction and retrying the same request will not succeed.
type ConfigurationError struct {
	err error
}

func (e *ConfigurationError) Error() string {
	return "invalid transaction request: " + e.err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.err
}

// StateError is returned when an operation is not permitted in the current state of a proposal, transaction or
// commit. For example, sending an unsigned proposal or sending the same proposal twice.
type StateError struct {
	Operation string
	State     string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s not permitted in %s state", e.Operation, e.State)
}

// CommitError is returned by SubmitTransaction when the transaction was committed to the ledger with a validation
// code other than VALID.
type CommitError struct {
	TransactionID string
	Code          peer.TxValidationCode
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("transaction %s failed to commit with status code %d (%s)", e.TransactionID, int32(e.Code), e.Code.String())
}

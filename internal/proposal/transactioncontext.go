/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package proposal

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bestbeforetoday/fabric-gateway-client/pkg/identity"
	"github.com/hyperledger/fabric-gateway/pkg/hash"
	"github.com/hyperledger/fabric-protos-go-apiv2/common"
)

const nonceLength = 24

type transactionContext struct {
	TransactionID   string
	SignatureHeader *common.SignatureHeader
}

func newTransactionContext(signingID *identity.SigningIdentity) (*transactionContext, error) {
	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	creator, err := signingID.Creator()
	if err != nil {
		return nil, err
	}

	return &transactionContext{
		TransactionID: TransactionID(nonce, creator),
		SignatureHeader: &common.SignatureHeader{
			Creator: creator,
			Nonce:   nonce,
		},
	}, nil
}

// TransactionID derives the transaction ID from a nonce and serialized creator. Peers validate it using SHA-256,
// independent of the hash used for signing.
func TransactionID(nonce []byte, creator []byte) string {
	saltedCreator := make([]byte, 0, len(nonce)+len(creator))
	saltedCreator = append(saltedCreator, nonce...)
	saltedCreator = append(saltedCreator, creator...)

	return hex.EncodeToString(hash.SHA256(saltedCreator))
}

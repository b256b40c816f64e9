/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package identity

import (
	"errors"

	"github.com/hyperledger/fabric-gateway/pkg/hash"
	gatewayid "github.com/hyperledger/fabric-gateway/pkg/identity"
	"github.com/hyperledger/fabric-protos-go-apiv2/msp"
	"google.golang.org/protobuf/proto"
)

// ErrNoSign is returned by Sign when the signing identity has no sign implementation. Messages created by such an
// identity must be signed offline.
var ErrNoSign = errors.New("no sign implementation supplied")

// SigningIdentity bundles a client identity with the hash and sign functions used to produce signatures on its
// behalf. It is immutable and safe for concurrent use.
type SigningIdentity struct {
	id   gatewayid.Identity
	sign gatewayid.Sign
	hash hash.Hash
}

// NewSigningIdentity creates a signing identity. A nil sign function means that signatures are produced outside of
// this process. A nil hash function selects SHA-256.
func NewSigningIdentity(id gatewayid.Identity, sign gatewayid.Sign, hashFn hash.Hash) *SigningIdentity {
	if hashFn == nil {
		hashFn = hash.SHA256
	}

	return &SigningIdentity{
		id:   id,
		sign: sign,
		hash: hashFn,
	}
}

// Identity returns the client identity.
func (signingID *SigningIdentity) Identity() gatewayid.Identity {
	return signingID.id
}

// Creator returns the serialized identity embedded in message signature headers.
func (signingID *SigningIdentity) Creator() ([]byte, error) {
	return Serialize(signingID.id)
}

// Digest computes the message digest that is passed to the sign function.
func (signingID *SigningIdentity) Digest(message []byte) []byte {
	return signingID.hash(message)
}

// CanSign reports whether signatures can be generated in-process.
func (signingID *SigningIdentity) CanSign() bool {
	return signingID.sign != nil
}

// Sign generates a signature for the supplied digest. Errors from the sign function are returned unmodified.
func (signingID *SigningIdentity) Sign(digest []byte) ([]byte, error) {
	if signingID.sign == nil {
		return nil, ErrNoSign
	}

	return signingID.sign(digest)
}

// Serialize returns the protobuf serialized identity used as the creator of messages.
func Serialize(id gatewayid.Identity) ([]byte, error) {
	serializedIdentity := &msp.SerializedIdentity{
		Mspid:   id.MspID(),
		IdBytes: id.Credentials(),
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(serializedIdentity)
}

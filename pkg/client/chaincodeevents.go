/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bestbeforetoday/fabric-gateway-client/internal/common"
	"github.com/bestbeforetoday/fabric-gateway-client/internal/proposal"
	"github.com/bestbeforetoday/fabric-gateway-client/pkg/identity"
	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"github.com/hyperledger/fabric-protos-go-apiv2/orderer"
	"github.com/hyperledger/fabric-protos-go-apiv2/peer"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// ChaincodeEvent emitted by a transaction function.
type ChaincodeEvent struct {
	BlockNumber   uint64
	TransactionID string
	ChaincodeName string
	EventName     string
	Payload       []byte
}

type eventsOptions struct {
	startPosition *orderer.SeekPosition
}

// ChaincodeEventsOption configures a chaincode events request.
type ChaincodeEventsOption = func(*eventsOptions) error

// WithStartBlock reads events starting at the specified block number. Without this option, events are read from
// the next block committed.
func WithStartBlock(blockNumber uint64) ChaincodeEventsOption {
	return func(opts *eventsOptions) error {
		opts.startPosition = &orderer.SeekPosition{
			Type: &orderer.SeekPosition_Specified{
				Specified: &orderer.SeekSpecified{
					Number: blockNumber,
				},
			},
		}
		return nil
	}
}

// ChaincodeEventsRequest is a request to read chaincode events. Events may be requested any number of times once the
// request is signed.
type ChaincodeEventsRequest struct {
	client        *gatewayClient
	signingID     *identity.SigningIdentity
	channelID     string
	signedRequest *gateway.SignedChaincodeEventsRequest
	unsignedBytes []byte
	state         signingState
}

func newChaincodeEventsRequest(
	client *gatewayClient,
	signingID *identity.SigningIdentity,
	channelID string,
	chaincodeName string,
	options ...ChaincodeEventsOption,
) (*ChaincodeEventsRequest, error) {
	if chaincodeName == "" {
		return nil, &ConfigurationError{err: errors.New("no chaincode name supplied")}
	}

	eventsOpts := &eventsOptions{
		startPosition: &orderer.SeekPosition{
			Type: &orderer.SeekPosition_NextCommit{
				NextCommit: &orderer.SeekNextCommit{},
			},
		},
	}
	if err := common.ApplyOptions(eventsOpts, options...); err != nil {
		return nil, err
	}

	creator, err := signingID.Creator()
	if err != nil {
		return nil, err
	}

	request := &gateway.ChaincodeEventsRequest{
		ChannelId:     channelID,
		ChaincodeId:   chaincodeName,
		Identity:      creator,
		StartPosition: eventsOpts.startPosition,
	}
	requestBytes, err := proposal.Marshal(request)
	if err != nil {
		return nil, err
	}

	signedRequest := &gateway.SignedChaincodeEventsRequest{
		Request: requestBytes,
	}
	unsignedBytes, err := proposal.Marshal(signedRequest)
	if err != nil {
		return nil, err
	}

	result := &ChaincodeEventsRequest{
		client:        client,
		signingID:     signingID,
		channelID:     channelID,
		signedRequest: signedRequest,
		unsignedBytes: unsignedBytes,
	}

	if signingID.CanSign() {
		if err := result.sign(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// NewSignedChaincodeEventsRequest recreates a chaincode events request from its unsigned serialized bytes, obtained
// from ChaincodeEventsRequest.Bytes, and a signature generated for its digest.
func (gw *Gateway) NewSignedChaincodeEventsRequest(bytes []byte, signature []byte) (*ChaincodeEventsRequest, error) {
	if len(signature) == 0 {
		return nil, errors.New("no signature supplied")
	}

	signedRequest := &gateway.SignedChaincodeEventsRequest{}
	if err := proto.Unmarshal(bytes, signedRequest); err != nil {
		return nil, fmt.Errorf("failed to deserialize signed chaincode events request: %w", err)
	}

	request := &gateway.ChaincodeEventsRequest{}
	if err := proto.Unmarshal(signedRequest.GetRequest(), request); err != nil {
		return nil, fmt.Errorf("failed to deserialize chaincode events request: %w", err)
	}

	signedRequest.Signature = nil
	result := &ChaincodeEventsRequest{
		client:        gw.client,
		signingID:     gw.signingID,
		channelID:     request.GetChannelId(),
		signedRequest: signedRequest,
		unsignedBytes: append([]byte(nil), bytes...),
	}
	if err := result.setSignature(signature); err != nil {
		return nil, err
	}

	return result, nil
}

// Bytes of the serialized chaincode events request, excluding any signature.
func (r *ChaincodeEventsRequest) Bytes() []byte {
	return append([]byte(nil), r.unsignedBytes...)
}

// Digest of the chaincode events request. This is used to generate a digital signature.
func (r *ChaincodeEventsRequest) Digest() []byte {
	return r.signingID.Digest(r.signedRequest.GetRequest())
}

// ChaincodeEvents is an open stream of chaincode events.
type ChaincodeEvents struct {
	events <-chan *ChaincodeEvent
	mutex  sync.Mutex
	err    error
}

// Events returns a channel from which chaincode events can be read. The channel is closed when the event stream
// ends, either because of an error or because the context is done.
func (e *ChaincodeEvents) Events() <-chan *ChaincodeEvent {
	return e.events
}

// Err returns the error that ended the event stream, exactly as received from the gRPC stream. It is nil while the
// stream is open, and after the stream ends normally or because the context is done.
func (e *ChaincodeEvents) Err() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.err
}

func (e *ChaincodeEvents) setErr(err error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.err = err
}

// Events opens a stream of chaincode events. Cancel the context to stop reading events and release the underlying
// stream.
func (r *ChaincodeEventsRequest) Events(ctx context.Context) (*ChaincodeEvents, error) {
	if err := r.state.require("chaincode events"); err != nil {
		return nil, err
	}

	stream, err := r.client.ChaincodeEvents(ctx, r.channelID, r.signedRequest)
	if err != nil {
		return nil, err
	}

	results := make(chan *ChaincodeEvent)
	events := &ChaincodeEvents{events: results}

	go func() {
		defer close(results)

		for {
			response, err := stream.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) && ctx.Err() == nil {
					events.setErr(err)
				}
				r.client.logger.Debug("Chaincode event stream closed", zap.String("channel", r.channelID), zap.Error(err))
				return
			}

			for _, event := range response.GetEvents() {
				select {
				case results <- newChaincodeEvent(response.GetBlockNumber(), event):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func newChaincodeEvent(blockNumber uint64, event *peer.ChaincodeEvent) *ChaincodeEvent {
	return &ChaincodeEvent{
		BlockNumber:   blockNumber,
		TransactionID: event.GetTxId(),
		ChaincodeName: event.GetChaincodeId(),
		EventName:     event.GetEventName(),
		Payload:       event.GetPayload(),
	}
}

func (r *ChaincodeEventsRequest) sign() error {
	signature, err := r.signingID.Sign(r.Digest())
	if err != nil {
		return err
	}

	return r.setSignature(signature)
}

func (r *ChaincodeEventsRequest) setSignature(signature []byte) error {
	if err := r.state.signed(); err != nil {
		return err
	}

	r.signedRequest.Signature = signature
	return nil
}

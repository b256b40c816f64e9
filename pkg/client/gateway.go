/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bestbeforetoday/fabric-gateway-client/internal/common"
	"github.com/bestbeforetoday/fabric-gateway-client/internal/proposal"
	"github.com/bestbeforetoday/fabric-gateway-client/pkg/identity"
	"github.com/hyperledger/fabric-gateway/pkg/hash"
	gatewayid "github.com/hyperledger/fabric-gateway/pkg/identity"
	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Gateway is the connection of a client identity to a Fabric Gateway service. It is safe for concurrent use. Close
// must be called when the Gateway is no longer needed, and must not be called while requests created from it are
// still in progress.
type Gateway struct {
	signingID  *identity.SigningIdentity
	client     *gatewayClient
	connection *grpc.ClientConn
	closeOnce  sync.Once
}

type gatewayOptions struct {
	sign        gatewayid.Sign
	hash        hash.Hash
	grpcClient  gateway.GatewayClient
	endpoint    string
	dialOptions []grpc.DialOption
	callOptions []grpc.CallOption
	logger      *zap.Logger
	registerer  prometheus.Registerer
}

// ConnectOption configures a Gateway.
type ConnectOption = func(*gatewayOptions) error

// Connect creates a Gateway for the supplied client identity. If no sign implementation is supplied, proposals and
// transactions created through the Gateway are left unsigned for offline signing.
func Connect(id gatewayid.Identity, options ...ConnectOption) (*Gateway, error) {
	if id == nil {
		return nil, errors.New("no identity supplied")
	}

	gatewayOpts := &gatewayOptions{
		logger: zap.NewNop(),
	}
	if err := common.ApplyOptions(gatewayOpts, options...); err != nil {
		return nil, err
	}

	connection, err := gatewayOpts.dial()
	if err != nil {
		return nil, err
	}

	gw, err := newGateway(id, gatewayOpts, connection)
	if err != nil {
		if connection != nil {
			_ = connection.Close()
		}
		return nil, err
	}

	return gw, nil
}

func (opts *gatewayOptions) dial() (*grpc.ClientConn, error) {
	if opts.endpoint == "" {
		return nil, nil
	}
	if opts.grpcClient != nil {
		return nil, errors.New("both endpoint and client connection supplied")
	}

	connection, err := grpc.Dial(opts.endpoint, opts.dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to %s: %w", opts.endpoint, err)
	}

	opts.grpcClient = gateway.NewGatewayClient(connection)
	return connection, nil
}

func newGateway(id gatewayid.Identity, opts *gatewayOptions, connection *grpc.ClientConn) (*Gateway, error) {
	if opts.grpcClient == nil {
		return nil, errors.New("no gRPC client connection supplied")
	}

	clientMetrics, err := newMetrics(opts.registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &Gateway{
		signingID: identity.NewSigningIdentity(id, opts.sign, opts.hash),
		client: &gatewayClient{
			grpcClient:  opts.grpcClient,
			callOptions: opts.callOptions,
			logger:      opts.logger,
			metrics:     clientMetrics,
		},
		connection: connection,
	}, nil
}

// WithSign uses the supplied sign implementation for the client identity.
func WithSign(sign gatewayid.Sign) ConnectOption {
	return func(opts *gatewayOptions) error {
		opts.sign = sign
		return nil
	}
}

// WithHash uses the supplied hashing implementation to generate digital signatures. SHA-256 is used if not
// specified.
func WithHash(hash hash.Hash) ConnectOption {
	return func(opts *gatewayOptions) error {
		opts.hash = hash
		return nil
	}
}

// WithEndpoint creates a gRPC connection to the supplied endpoint. The connection is owned by the Gateway and closed
// by Gateway.Close.
func WithEndpoint(target string, dialOptions ...grpc.DialOption) ConnectOption {
	return func(opts *gatewayOptions) error {
		if target == "" {
			return errors.New("no endpoint supplied")
		}
		opts.endpoint = target
		opts.dialOptions = append(opts.dialOptions, dialOptions...)
		return nil
	}
}

// WithClientConnection uses the supplied gRPC client connection. The connection remains owned by the caller, and can
// be shared by several Gateway instances connecting to the same Gateway service.
func WithClientConnection(clientConnection grpc.ClientConnInterface) ConnectOption {
	return func(opts *gatewayOptions) error {
		opts.grpcClient = gateway.NewGatewayClient(clientConnection)
		return nil
	}
}

// WithCallOptions specifies the gRPC call options to be used for every request.
func WithCallOptions(options ...grpc.CallOption) ConnectOption {
	return func(opts *gatewayOptions) error {
		opts.callOptions = append(opts.callOptions, options...)
		return nil
	}
}

// WithLogger uses the supplied logger for debug output. Logging is disabled if not specified.
func WithLogger(logger *zap.Logger) ConnectOption {
	return func(opts *gatewayOptions) error {
		if logger == nil {
			return errors.New("nil logger supplied")
		}
		opts.logger = logger
		return nil
	}
}

// WithRegisterer registers request metrics with the supplied Prometheus registerer.
func WithRegisterer(registerer prometheus.Registerer) ConnectOption {
	return func(opts *gatewayOptions) error {
		opts.registerer = registerer
		return nil
	}
}

// Identity returns the client identity used by the Gateway.
func (gw *Gateway) Identity() gatewayid.Identity {
	return gw.signingID.Identity()
}

// GetNetwork returns a Network representing the named Fabric channel.
func (gw *Gateway) GetNetwork(name string) *Network {
	return &Network{
		gateway: gw,
		name:    name,
	}
}

// Close releases the gRPC connection, if it is owned by the Gateway. Only the first call has any effect; subsequent
// calls return nil.
func (gw *Gateway) Close() error {
	var err error
	gw.closeOnce.Do(func() {
		if gw.connection != nil {
			err = gw.connection.Close()
		}
	})
	return err
}

func (gw *Gateway) newProposal(request *proposal.Request) (*Proposal, error) {
	proposedTransaction, err := proposal.New(gw.signingID, request)
	if err != nil {
		return nil, err
	}

	return newProposal(gw.client, gw.signingID, request.ChannelID, proposedTransaction)
}

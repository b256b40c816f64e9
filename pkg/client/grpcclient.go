/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"context"
	"time"

	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// gatewayClient wraps the generated gRPC client with call options, logging and metrics. Errors are always returned
// exactly as received from the gRPC client.
type gatewayClient struct {
	grpcClient  gateway.GatewayClient
	callOptions []grpc.CallOption
	logger      *zap.Logger
	metrics     *metrics
}

func (client *gatewayClient) Evaluate(ctx context.Context, in *gateway.EvaluateRequest) (response *gateway.EvaluateResponse, err error) {
	done := client.begin("Evaluate", in.GetChannelId(), in.GetTransactionId())
	defer func() { done(err) }()

	return client.grpcClient.Evaluate(ctx, in, client.callOptions...)
}

func (client *gatewayClient) Endorse(ctx context.Context, in *gateway.EndorseRequest) (response *gateway.EndorseResponse, err error) {
	done := client.begin("Endorse", in.GetChannelId(), in.GetTransactionId())
	defer func() { done(err) }()

	return client.grpcClient.Endorse(ctx, in, client.callOptions...)
}

func (client *gatewayClient) Submit(ctx context.Context, in *gateway.SubmitRequest) (response *gateway.SubmitResponse, err error) {
	done := client.begin("Submit", in.GetChannelId(), in.GetTransactionId())
	defer func() { done(err) }()

	return client.grpcClient.Submit(ctx, in, client.callOptions...)
}

func (client *gatewayClient) CommitStatus(ctx context.Context, channelID string, transactionID string, in *gateway.SignedCommitStatusRequest) (response *gateway.CommitStatusResponse, err error) {
	done := client.begin("CommitStatus", channelID, transactionID)
	defer func() { done(err) }()

	return client.grpcClient.CommitStatus(ctx, in, client.callOptions...)
}

func (client *gatewayClient) ChaincodeEvents(ctx context.Context, channelID string, in *gateway.SignedChaincodeEventsRequest) (stream gateway.Gateway_ChaincodeEventsClient, err error) {
	done := client.begin("ChaincodeEvents", channelID, "")
	defer func() { done(err) }()

	return client.grpcClient.ChaincodeEvents(ctx, in, client.callOptions...)
}

func (client *gatewayClient) begin(method string, channelID string, transactionID string) func(error) {
	start := time.Now()
	logger := client.logger.With(
		zap.String("method", method),
		zap.String("channel", channelID),
		zap.String("txID", transactionID),
	)
	logger.Debug("Sending request")

	return func(err error) {
		elapsed := time.Since(start)
		code := status.Code(err)
		client.metrics.observe(method, code, elapsed)
		logger.Debug("Request complete", zap.Duration("duration", elapsed), zap.Stringer("code", code))
	}
}

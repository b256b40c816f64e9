/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/bestbeforetoday/fabric-gateway-client/pkg/client"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const digestSuffix = ".digest"

func (app *application) evaluateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <transaction> [args...]",
		Short: "Evaluate a transaction function and print its result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := app.connect(true)
			if err != nil {
				return err
			}
			defer gw.Close()

			contract, err := app.contract(gw)
			if err != nil {
				return err
			}

			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()

			result, err := contract.EvaluateTransaction(ctx, args[0], args[1:]...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(result))
			return nil
		},
	}
}

func (app *application) submitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <transaction> [args...]",
		Short: "Submit a transaction function, wait for it to commit and print its result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := app.connect(true)
			if err != nil {
				return err
			}
			defer gw.Close()

			contract, err := app.contract(gw)
			if err != nil {
				return err
			}

			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()

			result, err := contract.SubmitTransaction(ctx, args[0], args[1:]...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(result))
			return nil
		},
	}
}

func (app *application) proposeCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "propose <transaction> [args...]",
		Short: "Write an unsigned proposal and its digest for offline signing",
		Long: "Write the unsigned proposal bytes to the output file and the digest to be signed to the same file " +
			"name with a " + digestSuffix + " suffix. The transaction ID is printed.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := app.connect(false)
			if err != nil {
				return err
			}
			defer gw.Close()

			contract, err := app.contract(gw)
			if err != nil {
				return err
			}

			proposal, err := contract.NewProposal(args[0], client.WithArguments(args[1:]...))
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, proposal.Bytes(), 0600); err != nil {
				return fmt.Errorf("failed to write proposal: %w", err)
			}
			if err := os.WriteFile(out+digestSuffix, proposal.Digest(), 0600); err != nil {
				return fmt.Errorf("failed to write digest: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), proposal.TransactionID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file for the unsigned proposal")
	cobra.CheckErr(cmd.MarkFlagRequired("out"))

	return cmd
}

func (app *application) signCommand() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a digest using the configured private key",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := app.config.require(keyKey); err != nil {
				return err
			}

			sign, err := newSign(app.config.KeyPath)
			if err != nil {
				return err
			}

			digest, err := os.ReadFile(in) //#nosec G304 -- user supplied input
			if err != nil {
				return fmt.Errorf("failed to read digest: %w", err)
			}
			if len(digest) == 0 {
				return errors.New("digest file is empty")
			}

			signature, err := sign(digest)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, signature, 0600); err != nil {
				return fmt.Errorf("failed to write signature: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "File containing the digest to sign")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file for the signature")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))
	cobra.CheckErr(cmd.MarkFlagRequired("out"))

	return cmd
}

func (app *application) evaluateSignedCommand() *cobra.Command {
	var proposalPath, signaturePath string

	cmd := &cobra.Command{
		Use:   "evaluate-signed",
		Short: "Evaluate a proposal signed offline and print its result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proposalBytes, err := os.ReadFile(proposalPath) //#nosec G304 -- user supplied input
			if err != nil {
				return fmt.Errorf("failed to read proposal: %w", err)
			}
			signature, err := os.ReadFile(signaturePath) //#nosec G304 -- user supplied input
			if err != nil {
				return fmt.Errorf("failed to read signature: %w", err)
			}

			gw, err := app.connect(false)
			if err != nil {
				return err
			}
			defer gw.Close()

			proposal, err := gw.NewSignedProposal(proposalBytes, signature)
			if err != nil {
				return err
			}

			ctx, cancel := app.requestContext(cmd.Context())
			defer cancel()

			result, err := proposal.Evaluate(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&proposalPath, "proposal", "", "File containing the unsigned proposal")
	cmd.Flags().StringVar(&signaturePath, "signature", "", "File containing the proposal signature")
	cobra.CheckErr(cmd.MarkFlagRequired("proposal"))
	cobra.CheckErr(cmd.MarkFlagRequired("signature"))

	return cmd
}

func (app *application) eventsCommand() *cobra.Command {
	var startBlock int64

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print chaincode events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.config.require(channelKey, chaincodeKey); err != nil {
				return err
			}

			gw, err := app.connect(true)
			if err != nil {
				return err
			}
			defer gw.Close()

			var options []client.ChaincodeEventsOption
			if startBlock >= 0 {
				options = append(options, client.WithStartBlock(uint64(startBlock)))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			network := gw.GetNetwork(app.config.Channel)
			events, err := network.ChaincodeEvents(ctx, app.config.Chaincode, options...)
			if err != nil {
				return err
			}

			for event := range events.Events() {
				app.logger.Debug("Received chaincode event", zap.String("txID", event.TransactionID))
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", event.BlockNumber, event.TransactionID, event.EventName, event.Payload)
			}

			return events.Err()
		},
	}

	cmd.Flags().Int64Var(&startBlock, "start-block", -1, "Block number from which to read events; next committed block if not set")

	return cmd
}

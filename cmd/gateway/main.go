/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/bestbeforetoday/fabric-gateway-client/pkg/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/net/context"
)

func main() {
	if err := newRootCommand(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

type application struct {
	viper  *viper.Viper
	config *config
	logger *zap.Logger
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	app := &application{viper: v}

	root := &cobra.Command{
		Use:               "gateway",
		Short:             "Invoke smart contracts through a Fabric Gateway service",
		SilenceUsage:      true,
		PersistentPreRunE: app.initialize,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = app.logger.Sync()
		},
	}
	cobra.CheckErr(addConfigFlags(root, v))

	root.AddCommand(
		app.evaluateCommand(),
		app.submitCommand(),
		app.proposeCommand(),
		app.signCommand(),
		app.evaluateSignedCommand(),
		app.eventsCommand(),
	)

	return root
}

func (app *application) initialize(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(app.viper)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}

	app.config = cfg
	app.logger = logger
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// connect creates a Gateway for the configured identity. The Gateway signs with the configured private key only if
// withSign is true; otherwise proposals are left unsigned for offline signing.
func (app *application) connect(withSign bool) (*client.Gateway, error) {
	cfg := app.config
	if err := cfg.require(endpointKey, mspIDKey, certKey); err != nil {
		return nil, err
	}

	id, err := newIdentity(cfg.MspID, cfg.CertPath)
	if err != nil {
		return nil, err
	}

	dialOptions, err := newDialOptions(cfg.TLSCAPath)
	if err != nil {
		return nil, err
	}

	options := []client.ConnectOption{
		client.WithEndpoint(cfg.Endpoint, dialOptions...),
		client.WithLogger(app.logger),
	}

	if withSign {
		if err := cfg.require(keyKey); err != nil {
			return nil, err
		}
		sign, err := newSign(cfg.KeyPath)
		if err != nil {
			return nil, err
		}
		options = append(options, client.WithSign(sign))
	}

	app.logger.Debug("Connecting", zap.String("endpoint", cfg.Endpoint), zap.String("mspID", cfg.MspID))
	return client.Connect(id, options...)
}

func (app *application) contract(gw *client.Gateway) (*client.Contract, error) {
	cfg := app.config
	if err := cfg.require(channelKey, chaincodeKey); err != nil {
		return nil, err
	}

	return gw.GetNetwork(cfg.Channel).GetContractWithName(cfg.Chaincode, cfg.Contract), nil
}

func (app *application) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, app.config.Timeout)
}

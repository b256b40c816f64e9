/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "FABRIC"

	configFileKey = "config"
	endpointKey   = "endpoint"
	mspIDKey      = "mspid"
	certKey       = "cert"
	keyKey        = "key"
	tlsCAKey      = "tls-ca"
	channelKey    = "channel"
	chaincodeKey  = "chaincode"
	contractKey   = "contract"
	timeoutKey    = "timeout"
	verboseKey    = "verbose"
)

type config struct {
	Endpoint  string
	MspID     string
	CertPath  string
	KeyPath   string
	TLSCAPath string
	Channel   string
	Chaincode string
	Contract  string
	Timeout   time.Duration
	Verbose   bool
}

// addConfigFlags registers the settings shared by all commands and binds them to v. Flags take precedence over
// FABRIC_* environment variables, which take precedence over the config file.
func addConfigFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	flags.String(configFileKey, "", "YAML configuration file")
	flags.String(endpointKey, "", "Gateway service endpoint, as host:port")
	flags.String(mspIDKey, "", "MSP ID of the client identity")
	flags.String(certKey, "", "PEM file containing the client X.509 certificate")
	flags.String(keyKey, "", "PEM file containing the client private key")
	flags.String(tlsCAKey, "", "PEM file containing the Gateway TLS CA certificate; plaintext if not set")
	flags.StringP(channelKey, "C", "", "Channel name")
	flags.StringP(chaincodeKey, "n", "", "Chaincode name")
	flags.String(contractKey, "", "Smart contract name within the chaincode; default contract if not set")
	flags.Duration(timeoutKey, time.Minute, "Timeout for each Gateway request")
	flags.BoolP(verboseKey, "v", false, "Enable debug logging")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v.BindPFlags(flags)
}

func loadConfig(v *viper.Viper) (*config, error) {
	if file := v.GetString(configFileKey); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return &config{
		Endpoint:  v.GetString(endpointKey),
		MspID:     v.GetString(mspIDKey),
		CertPath:  v.GetString(certKey),
		KeyPath:   v.GetString(keyKey),
		TLSCAPath: v.GetString(tlsCAKey),
		Channel:   v.GetString(channelKey),
		Chaincode: v.GetString(chaincodeKey),
		Contract:  v.GetString(contractKey),
		Timeout:   v.GetDuration(timeoutKey),
		Verbose:   v.GetBool(verboseKey),
	}, nil
}

// require returns an error naming the first of the settings that has no value.
func (cfg *config) require(keys ...string) error {
	values := map[string]string{
		endpointKey:  cfg.Endpoint,
		mspIDKey:     cfg.MspID,
		certKey:      cfg.CertPath,
		keyKey:       cfg.KeyPath,
		channelKey:   cfg.Channel,
		chaincodeKey: cfg.Chaincode,
	}

	for _, key := range keys {
		if values[key] == "" {
			return fmt.Errorf("required setting not supplied: --%s or %s_%s", key, envPrefix, strings.ToUpper(key))
		}
	}

	return nil
}

// Package commands implements the evg-api subcommands.
package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/viper"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
	"github.com/evergreen-ci/evergreen-go/pkg/evgclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
)

// newClient builds a retrying client from flags, environment, and the
// Evergreen config file, in that order of precedence.
func newClient() (evergreen.Client, error) {
	apiServer := viper.GetString("api-server")
	if apiServer == "" {
		apiServer = viper.GetString("evergreen.api_server_host")
	}
	if apiServer == "" {
		apiServer = evergreen.DefaultAPIServer
	}

	user := viper.GetString("user")
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		apiKey = viper.GetString("api_key")
	}

	cfg := &evergreen.Config{
		APIServer: apiServer,
		Timeout:   evergreen.DefaultTimeout,
	}
	if user != "" || apiKey != "" {
		cfg.Auth = &evergreen.Auth{Username: user, APIKey: apiKey}
	}
	return evgclient.NewRetrying(cfg)
}

// outputJSON prints any value as indented JSON.
func outputJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func wantsTable() bool {
	return viper.GetString("output") == OutputFormatTable
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/topicfoundry/topicfoundry/pkg/config"
	"github.com/topicfoundry/topicfoundry/pkg/foundryConfig"
)

var rootCmd = &cobra.Command{
	Use:   "topicfoundry",
	Short: "Forge event schemas & filters from ABIs",
	Long:  `An offline tool that parses Ethereum contract ABIs and forges event metadata: topic0 hashes, SQL DDL, JSON Schemas, CSV data dictionaries and eth_getLogs filter stubs.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var configFile string
var Config *foundryConfig.FoundryConfig

func init() {
	cobra.OnInitialize(initConfigIfPresent)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	initConfig(rootCmd)

	rootCmd.PersistentFlags().Bool(foundryConfig.Debug, false, `"true" or "false"`)

	// setup sub commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(ddlCmd)
	rootCmd.AddCommand(jsonCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(decodeCmd)

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		key := config.KebabToSnakeCase(f.Name)
		viper.BindPFlag(key, f) //nolint:errcheck
		viper.BindEnv(key)      //nolint:errcheck
	})
}

func initConfig(cmd *cobra.Command) {
	viper.SetEnvPrefix(foundryConfig.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

func initConfigIfPresent() {
	if configFile == "" {
		return
	}

	fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	if err := viper.Unmarshal(&Config); err != nil {
		panic(err)
	}
}

func main() {
	Execute()
}
